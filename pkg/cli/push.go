package cli

import (
	"github.com/spf13/cobra"

	"github.com/anchorline/ecrmirror/pkg/config"
	"github.com/anchorline/ecrmirror/pkg/docker"
	"github.com/anchorline/ecrmirror/pkg/imagespec"
	"github.com/anchorline/ecrmirror/pkg/mirror"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

func newPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Assemble and push the multi-arch manifest for every image",
		Long: `Assemble and push the multi-arch manifest for every (image, tag) in the
image list. Every architecture-qualified tag must already have been
published with 'ecrmirror build'.`,
		Args: cobra.NoArgs,
		RunE: pushCommand,
	}
}

func pushCommand(cmd *cobra.Command, args []string) error {
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

	// Manifest assembly never reads the secret store.
	m := mirror.New(engine, nil, cfg, entries)
	defer m.Cleanup()

	if err := m.AssembleAll(ctx); err != nil {
		return err
	}

	console.Infof("\nPushed manifests for %d images to %s", len(entries), cfg.Registry)
	return nil
}
