package docker

import (
	"context"
	"strings"

	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// Login authenticates the docker CLI against a registry. The password is
// fed over stdin so it never appears in the process list; docker stores
// the credential in its config file or credentials store, where Push
// picks it up again.
func (c *apiClient) Login(ctx context.Context, registryHost string, username string, password string) error {
	console.Debugf("=== APIClient.Login %s", registryHost)

	return c.execInput(ctx, strings.NewReader(password), loginArgs(registryHost, username)...)
}

func loginArgs(registryHost string, username string) []string {
	return []string{
		"login",
		"--username", username,
		"--password-stdin",
		registryHost,
	}
}
