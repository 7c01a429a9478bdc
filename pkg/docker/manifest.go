package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/anchorline/ecrmirror/pkg/util/console"
)

func (c *apiClient) ManifestCreate(ctx context.Context, ref string, members []string) error {
	console.Debugf("=== APIClient.ManifestCreate %s (%d members)", ref, len(members))

	output, err := c.execCapture(ctx, manifestCreateArgs(ref, members)...)
	if err != nil {
		return fmt.Errorf("failed to create manifest %q: %s", ref, strings.TrimSpace(output))
	}
	return nil
}

// ManifestRm removes a local manifest list. The engine reports removing an
// absent manifest as an error; that case is explicitly treated as success
// so callers get "remove if exists" semantics.
func (c *apiClient) ManifestRm(ctx context.Context, ref string) error {
	console.Debugf("=== APIClient.ManifestRm %s", ref)

	output, err := c.execCapture(ctx, "manifest", "rm", ref)
	if err != nil {
		if isManifestNotFound(output) {
			return nil
		}
		return fmt.Errorf("failed to remove manifest %q: %s", ref, strings.TrimSpace(output))
	}
	return nil
}

func (c *apiClient) ManifestPush(ctx context.Context, ref string) error {
	console.Debugf("=== APIClient.ManifestPush %s", ref)

	return c.exec(ctx, "manifest", "push", ref)
}

func manifestCreateArgs(ref string, members []string) []string {
	args := []string{"manifest", "create", ref}
	for _, member := range members {
		args = append(args, "--amend", member)
	}
	return args
}

// Error messages vary between engine versions, so match the known
// spellings of "that manifest does not exist".
func isManifestNotFound(output string) bool {
	return strings.Contains(output, "no such manifest") ||
		strings.Contains(output, "manifest unknown") ||
		strings.Contains(output, "not found")
}
