package mirror

import (
	"context"

	"github.com/anchorline/ecrmirror/pkg/errors"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// AssembleAll assembles and pushes the multi-arch manifest for every
// (image, tag) of the run. Every architecture-qualified tag must already
// exist in the registry; a missing member is fatal.
func (m *Mirror) AssembleAll(ctx context.Context) error {
	for _, entry := range m.entries {
		for _, tag := range entry.Tags {
			if err := m.assembleManifest(ctx, entry.Image, tag); err != nil {
				return err
			}
		}
	}
	return nil
}

// assembleManifest replaces the manifest at {registry}/{name}:{tag} with
// one referencing the architecture-qualified tag for every platform in the
// matrix, in matrix order. Remove-then-recreate keeps re-runs idempotent:
// no stale architecture entries survive a run with a reduced matrix.
func (m *Mirror) assembleManifest(ctx context.Context, image string, tag string) error {
	ref := m.manifestRef(image, tag)
	console.Infof("Assembling manifest %s", ref)

	if err := m.engine.ManifestRm(ctx, ref); err != nil {
		return errors.Manifest(err, "removing stale manifest %s", ref)
	}

	members := make([]string, 0, len(m.platforms))
	for _, p := range m.platforms {
		members = append(members, m.destinationRef(image, tag, p.Arch))
	}

	if err := m.engine.ManifestCreate(ctx, ref, members); err != nil {
		return errors.Manifest(err, "creating manifest %s", ref)
	}
	if err := m.engine.ManifestPush(ctx, ref); err != nil {
		return errors.Manifest(err, "pushing manifest %s", ref)
	}
	return nil
}
