package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/docker/cli/cli/config"
	"github.com/docker/docker/api/types/registry"

	"github.com/anchorline/ecrmirror/pkg/util/console"
)

type credentialHelperInput struct {
	Username  string
	Secret    string
	ServerURL string
}

// loadRegistryAuths reads credentials for the given registries from the
// docker config file, or from the configured credentials store if one is
// set. `ecrmirror setup` stores the short-lived registry token there via
// `docker login`.
func loadRegistryAuths(ctx context.Context, registryHosts ...string) (map[string]registry.AuthConfig, error) {
	conf := config.LoadDefaultConfigFile(os.Stderr)

	out := make(map[string]registry.AuthConfig)

	for _, host := range registryHosts {
		if conf.CredentialsStore != "" {
			credsHelper, err := loadAuthFromCredentialsStore(ctx, conf.CredentialsStore, host)
			if err != nil {
				return nil, err
			}
			out[host] = registry.AuthConfig{
				Username:      credsHelper.Username,
				Password:      credsHelper.Secret,
				ServerAddress: host,
			}
			continue
		}

		if auth, ok := conf.AuthConfigs[host]; ok {
			out[host] = registry.AuthConfig{
				Username:      auth.Username,
				Password:      auth.Password,
				Auth:          auth.Auth,
				ServerAddress: host,
				IdentityToken: auth.IdentityToken,
				RegistryToken: auth.RegistryToken,
			}
			continue
		}

		console.Debugf("no auth config found for %s", host)
	}

	return out, nil
}

func loadAuthFromCredentialsStore(ctx context.Context, credsStore string, registryHost string) (*credentialHelperInput, error) {
	var out strings.Builder
	binary := dockerCredentialBinary(credsStore)
	cmd := exec.CommandContext(ctx, binary, "get")
	cmd.Env = os.Environ()
	cmd.Stdout = &out
	cmd.Stderr = &out
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	defer stdin.Close()
	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(stdin, registryHost); err != nil {
		return nil, err
	}
	if err := stdin.Close(); err != nil {
		return nil, err
	}
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("exec wait error: %w", err)
	}

	var creds credentialHelperInput
	if err := json.Unmarshal([]byte(out.String()), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func dockerCredentialBinary(credsStore string) string {
	return "docker-credential-" + credsStore
}
