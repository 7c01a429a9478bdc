// Package docker implements the image engine interface against a Docker
// engine. Image-level operations (pull, tag, push) go through the engine
// API; operations that only exist in the docker CLI (buildx builds,
// login, manifest lists) shell out to the docker binary.
package docker

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	dc "github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/google/go-containerregistry/pkg/name"

	"github.com/anchorline/ecrmirror/pkg/docker/command"
	"github.com/anchorline/ecrmirror/pkg/global"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

func NewClient(ctx context.Context, opts ...Option) (*apiClient, error) {
	clientOptions := &clientOptions{
		authConfigs: make(map[string]registry.AuthConfig),
	}
	for _, opt := range opts {
		opt(clientOptions)
	}

	if clientOptions.host == "" {
		host, err := determineDockerHost()
		if err != nil {
			return nil, fmt.Errorf("error determining docker host: %w", err)
		}
		clientOptions.host = host
	}

	dockerClientOpts := []dc.Opt{
		dc.WithTLSClientConfigFromEnv(),
		dc.WithVersionFromEnv(),
		dc.WithAPIVersionNegotiation(),
		dc.WithHost(clientOptions.host),
	}

	client, err := dc.NewClientWithOpts(dockerClientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating docker client: %w", err)
	}

	if _, err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error pinging docker daemon: %w", err)
	}

	return &apiClient{client: client, authConfig: clientOptions.authConfigs}, nil
}

type apiClient struct {
	client     *dc.Client
	authConfig map[string]registry.AuthConfig
}

func (c *apiClient) Pull(ctx context.Context, imageRef string, platform string) error {
	console.Debugf("=== APIClient.Pull %s platform:%s", imageRef, platform)

	ctx, cancel := context.WithTimeout(ctx, global.EngineCallTimeout)
	defer cancel()

	output, err := c.client.ImagePull(ctx, imageRef, image.PullOptions{
		Platform: platform,
	})
	if err != nil {
		if client.IsErrNotFound(err) {
			return &command.NotFoundError{Ref: imageRef, Object: "image"}
		}
		return fmt.Errorf("failed to pull image %q: %w", imageRef, err)
	}
	defer output.Close()

	// The daemon reports pull failures (missing platform manifest, unknown
	// tag) as in-band error lines on a 200 stream, not as an ImagePull
	// error. Parse the stream so those surface as errors instead of
	// scrolling past.
	isTTY := console.IsTTY(os.Stderr)
	if err := jsonmessage.DisplayJSONMessagesStream(output, os.Stderr, os.Stderr.Fd(), isTTY, nil); err != nil {
		var streamErr *jsonmessage.JSONError
		if errors.As(err, &streamErr) {
			if isPullNotFoundError(err) {
				return &command.NotFoundError{Ref: imageRef, Object: "image"}
			}
			if isAuthorizationFailedError(err) {
				return command.ErrAuthorizationFailed
			}
		}
		return fmt.Errorf("error during image pull: %w", err)
	}
	return nil
}

func (c *apiClient) Tag(ctx context.Context, src string, dst string) error {
	console.Debugf("=== APIClient.Tag %s -> %s", src, dst)

	ctx, cancel := context.WithTimeout(ctx, global.EngineCallTimeout)
	defer cancel()

	if err := c.client.ImageTag(ctx, src, dst); err != nil {
		if client.IsErrNotFound(err) {
			return &command.NotFoundError{Ref: src, Object: "image"}
		}
		return fmt.Errorf("failed to tag %q as %q: %w", src, dst, err)
	}
	return nil
}

func (c *apiClient) Push(ctx context.Context, imageRef string) error {
	console.Debugf("=== APIClient.Push %s", imageRef)

	ctx, cancel := context.WithTimeout(ctx, global.EngineCallTimeout)
	defer cancel()

	parsedName, err := name.ParseReference(imageRef)
	if err != nil {
		return fmt.Errorf("failed to parse image reference: %w", err)
	}

	console.Debugf("fully qualified image ref: %s", parsedName)

	var authConfig registry.AuthConfig
	registryHost := parsedName.Context().RegistryStr()
	if auth, ok := c.authConfig[registryHost]; ok {
		authConfig = auth
	} else {
		// Load authentication for this registry from the docker config,
		// where `ecrmirror setup` stored the short-lived token.
		authConfigs, err := loadRegistryAuths(ctx, registryHost)
		if err == nil {
			if auth, ok := authConfigs[registryHost]; ok {
				authConfig = auth
				c.authConfig[registryHost] = auth
			}
		}
	}

	var opts image.PushOptions
	encodedAuth, err := registry.EncodeAuthConfig(authConfig)
	if err != nil {
		return fmt.Errorf("failed to encode auth config: %w", err)
	}
	opts.RegistryAuth = encodedAuth

	output, err := c.client.ImagePush(ctx, imageRef, opts)
	if err != nil {
		return fmt.Errorf("failed to push image: %w", err)
	}
	defer output.Close()

	// output is a json stream, so we need to parse it, handle errors, and write progress to stderr
	isTTY := console.IsTTY(os.Stderr)
	if err := jsonmessage.DisplayJSONMessagesStream(output, os.Stderr, os.Stderr.Fd(), isTTY, nil); err != nil {
		var streamErr *jsonmessage.JSONError
		if errors.As(err, &streamErr) {
			if isTagNotFoundError(err) {
				return &command.NotFoundError{Ref: imageRef, Object: "tag"}
			}
			if isAuthorizationFailedError(err) {
				return command.ErrAuthorizationFailed
			}
		}
		return fmt.Errorf("error during image push: %w", err)
	}

	return nil
}
