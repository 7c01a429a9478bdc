package cli

import (
	"github.com/spf13/cobra"

	"github.com/anchorline/ecrmirror/pkg/config"
	"github.com/anchorline/ecrmirror/pkg/docker"
	"github.com/anchorline/ecrmirror/pkg/errors"
	"github.com/anchorline/ecrmirror/pkg/global"
	"github.com/anchorline/ecrmirror/pkg/imagespec"
	"github.com/anchorline/ecrmirror/pkg/registry"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

func newSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Authenticate against the registry and prepare the build environment",
		Args:  cobra.NoArgs,
		RunE:  setupCommand,
	}
}

func setupCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromEnvironment()
	if err != nil {
		return err
	}
	// Reject a malformed image list before touching the network.
	if _, err := imagespec.Parse(cfg.ImageList); err != nil {
		return err
	}

	engine, err := docker.NewClient(ctx)
	if err != nil {
		return err
	}

	creds, err := registry.Authenticate(ctx, cfg.Region)
	if err != nil {
		return err
	}
	if err := engine.Login(ctx, cfg.Registry, creds.Username, creds.Password); err != nil {
		return errors.Auth(err, "logging in to %s", cfg.Registry)
	}

	if err := engine.CreateBuilder(ctx, global.BuilderName); err != nil {
		return err
	}

	console.Infof("Logged in to %s, builder %q is ready", cfg.Registry, global.BuilderName)
	return nil
}
