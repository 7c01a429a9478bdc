package docker

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/anchorline/ecrmirror/pkg/global"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// exec runs the docker binary with the given arguments, streaming output
// to stderr. The binary can be overridden through the environment so
// tests can substitute a stand-in. Every call is bounded by
// global.EngineCallTimeout.
func (c *apiClient) exec(ctx context.Context, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, global.EngineCallTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, DockerCommandFromEnvironment(), args...)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	return cmd.Run()
}

// execCapture runs the docker binary and returns its combined output,
// for callers that need to interpret engine error messages.
func (c *apiClient) execCapture(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, global.EngineCallTimeout)
	defer cancel()

	var out strings.Builder
	cmd := exec.CommandContext(ctx, DockerCommandFromEnvironment(), args...)
	cmd.Env = os.Environ()
	cmd.Stdout = &out
	cmd.Stderr = &out

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	err := cmd.Run()
	return out.String(), err
}

// execInput is exec with data fed to the command's stdin.
func (c *apiClient) execInput(ctx context.Context, input io.Reader, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, global.EngineCallTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, DockerCommandFromEnvironment(), args...)
	cmd.Env = os.Environ()
	cmd.Stdin = input
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	return cmd.Run()
}
