package docker

import (
	"context"
	"sort"

	"github.com/anchorline/ecrmirror/pkg/docker/command"
	"github.com/anchorline/ecrmirror/pkg/global"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

func (c *apiClient) Build(ctx context.Context, options command.BuildOptions) error {
	console.Debugf("=== APIClient.Build %s platform:%s", options.ImageName, options.Platform)

	return c.exec(ctx, buildArgs(options)...)
}

// CreateBuilder makes sure a buildx builder with the given name exists and
// is the active one. Builds for foreign architectures need the
// docker-container driver.
func (c *apiClient) CreateBuilder(ctx context.Context, name string) error {
	console.Debugf("=== APIClient.CreateBuilder %s", name)

	if _, err := c.execCapture(ctx, "buildx", "inspect", name); err == nil {
		console.Debugf("builder %q already exists", name)
		return c.exec(ctx, "buildx", "use", name)
	}
	return c.exec(ctx, builderCreateArgs(name)...)
}

func buildArgs(options command.BuildOptions) []string {
	args := []string{
		"buildx", "build",
		"--builder", global.BuilderName,
		"--platform", options.Platform,
		"--load",
	}

	// Sorted so argument order is stable between runs.
	keys := make([]string, 0, len(options.BuildArgs))
	for k := range options.BuildArgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--build-arg", k+"="+options.BuildArgs[k])
	}

	args = append(args,
		"--file", options.DockerfilePath,
		"--tag", options.ImageName,
		options.ContextDir,
	)
	return args
}

func builderCreateArgs(name string) []string {
	return []string{
		"buildx", "create",
		"--name", name,
		"--driver", "docker-container",
		"--bootstrap",
		"--use",
	}
}
