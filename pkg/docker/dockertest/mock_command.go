// Package dockertest provides a recording image engine for tests.
package dockertest

import (
	"context"
	"sync"

	"github.com/anchorline/ecrmirror/pkg/docker/command"
)

type Pull struct {
	Ref      string
	Platform string
}

type Tag struct {
	Src string
	Dst string
}

type Login struct {
	Host     string
	Username string
	Password string
}

type ManifestCreate struct {
	Ref     string
	Members []string
}

// MockCommand implements command.Command, recording every call. Errors are
// injected per reference through the *Errs maps. The mutex makes the mock
// safe for parallel publish tests.
type MockCommand struct {
	mu sync.Mutex

	PullErrs           map[string]error
	TagErrs            map[string]error
	PushErrs           map[string]error
	BuildErrs          map[string]error
	ManifestCreateErrs map[string]error
	ManifestRmErrs     map[string]error
	ManifestPushErrs   map[string]error
	LoginErr           error
	CreateBuilderErr   error

	Pulls           []Pull
	Tags            []Tag
	Pushes          []string
	Builds          []command.BuildOptions
	Logins          []Login
	Builders        []string
	ManifestCreates []ManifestCreate
	ManifestRms     []string
	ManifestPushes  []string
}

func NewMockCommand() *MockCommand {
	return &MockCommand{}
}

func (c *MockCommand) Pull(ctx context.Context, ref string, platform string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Pulls = append(c.Pulls, Pull{Ref: ref, Platform: platform})
	return c.PullErrs[ref]
}

func (c *MockCommand) Tag(ctx context.Context, src string, dst string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Tags = append(c.Tags, Tag{Src: src, Dst: dst})
	return c.TagErrs[dst]
}

func (c *MockCommand) Push(ctx context.Context, ref string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Pushes = append(c.Pushes, ref)
	return c.PushErrs[ref]
}

func (c *MockCommand) Build(ctx context.Context, options command.BuildOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Builds = append(c.Builds, options)
	return c.BuildErrs[options.ImageName]
}

func (c *MockCommand) Login(ctx context.Context, registryHost string, username string, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Logins = append(c.Logins, Login{Host: registryHost, Username: username, Password: password})
	return c.LoginErr
}

func (c *MockCommand) CreateBuilder(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Builders = append(c.Builders, name)
	return c.CreateBuilderErr
}

func (c *MockCommand) ManifestCreate(ctx context.Context, ref string, members []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := append([]string(nil), members...)
	c.ManifestCreates = append(c.ManifestCreates, ManifestCreate{Ref: ref, Members: copied})
	return c.ManifestCreateErrs[ref]
}

func (c *MockCommand) ManifestRm(ctx context.Context, ref string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ManifestRms = append(c.ManifestRms, ref)
	return c.ManifestRmErrs[ref]
}

func (c *MockCommand) ManifestPush(ctx context.Context, ref string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ManifestPushes = append(c.ManifestPushes, ref)
	return c.ManifestPushErrs[ref]
}
