package cli

import (
	"github.com/spf13/cobra"

	"github.com/anchorline/ecrmirror/pkg/config"
	"github.com/anchorline/ecrmirror/pkg/docker"
	"github.com/anchorline/ecrmirror/pkg/imagespec"
	"github.com/anchorline/ecrmirror/pkg/mirror"
	"github.com/anchorline/ecrmirror/pkg/secrets"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

var buildJobs int

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Publish every image in the image list for every architecture",
		Args:  cobra.NoArgs,
		RunE:  buildCommand,
	}
	cmd.Flags().IntVarP(&buildJobs, "jobs", "j", 1, "Number of concurrent publishes")
	return cmd
}

func buildCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromEnvironment()
	if err != nil {
		return err
	}
	entries, err := imagespec.Parse(cfg.ImageList)
	if err != nil {
		return err
	}

	engine, err := docker.NewClient(ctx)
	if err != nil {
		return err
	}
	store, err := secrets.NewParameterStore(ctx, cfg.Region)
	if err != nil {
		return err
	}

	m := mirror.New(engine, store, cfg, entries)
	defer m.Cleanup()

	if err := m.PublishAll(ctx, buildJobs); err != nil {
		return err
	}

	console.Infof("\nPublished %d images to %s", len(entries), cfg.Registry)
	return nil
}
