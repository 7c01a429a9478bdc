package command

import (
	"context"
)

// Command is the image engine surface the mirroring core depends on.
// The production implementation talks to a Docker engine; tests swap in a
// recording mock.
type Command interface {
	// Pull fetches ref for exactly the given platform ("os/arch").
	Pull(ctx context.Context, ref string, platform string) error
	// Tag points dst at the same content as src.
	Tag(ctx context.Context, src string, dst string) error
	// Push publishes ref to its registry.
	Push(ctx context.Context, ref string) error
	// Build builds an image from a Dockerfile, constrained to one platform.
	Build(ctx context.Context, options BuildOptions) error
	// Login authenticates the engine against a registry.
	Login(ctx context.Context, registryHost string, username string, password string) error
	// CreateBuilder initializes a multi-platform builder context. Reuses an
	// existing builder of the same name.
	CreateBuilder(ctx context.Context, name string) error

	// ManifestCreate creates a manifest list at ref from the given member
	// references, replacing members of an existing list (amend).
	ManifestCreate(ctx context.Context, ref string, members []string) error
	// ManifestRm removes a local manifest list. Removing an absent manifest
	// is not an error.
	ManifestRm(ctx context.Context, ref string) error
	// ManifestPush publishes the manifest list at ref.
	ManifestPush(ctx context.Context, ref string) error
}

type BuildOptions struct {
	// DockerfilePath is the build recipe on local disk.
	DockerfilePath string
	// ContextDir is the build context directory.
	ContextDir string
	// ImageName is the tag applied to the built image.
	ImageName string
	// Platform constrains the build, e.g. "linux/arm64".
	Platform string
	// BuildArgs are passed as --build-arg key=value.
	BuildArgs map[string]string
}
