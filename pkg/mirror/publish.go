package mirror

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/anchorline/ecrmirror/pkg/errors"
	"github.com/anchorline/ecrmirror/pkg/platform"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// PublishAll publishes every (image, tag, platform) triple of the run.
// The first failure aborts the whole run; remaining triples are not
// attempted. With jobs > 1 publishes run concurrently, bounded by jobs;
// the triples are independent, and the shared build cache is safe for
// concurrent use.
//
// When the agent image is part of the run its derived-build preparation
// happens first, exactly once, since all of its platform builds share the
// generated recipe.
func (m *Mirror) PublishAll(ctx context.Context, jobs int) error {
	if m.needsAgent() {
		if err := m.PrepareDerivedBuild(ctx); err != nil {
			return err
		}
	}

	if jobs < 1 {
		jobs = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, entry := range m.entries {
		for _, tag := range entry.Tags {
			for _, p := range m.platforms {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					return m.publishArchitecture(ctx, entry.Image, tag, p)
				})
			}
		}
	}

	return g.Wait()
}

// publishArchitecture fetches (or builds) the artifact for exactly one
// platform and republishes it under the architecture-qualified destination
// reference. After success the registry holds the platform's content at
// {registry}/{name}:{tag}-{arch}.
func (m *Mirror) publishArchitecture(ctx context.Context, image string, tag string, p platform.Platform) error {
	dst := m.destinationRef(image, tag, p.Arch)

	if image == m.cfg.AgentImage {
		console.Infof("Building %s for %s", dst, p)
		if err := m.buildAgent(ctx, tag, p, dst); err != nil {
			return errors.Publish(err, "building %s:%s for %s", image, tag, p)
		}
	} else {
		src := image + ":" + tag
		console.Infof("Publishing %s for %s as %s", src, p, dst)
		if err := m.engine.Pull(ctx, src, p.String()); err != nil {
			return errors.Publish(err, "pulling %s for %s", src, p)
		}
		if err := m.engine.Tag(ctx, src, dst); err != nil {
			return errors.Publish(err, "tagging %s as %s", src, dst)
		}
	}

	if err := m.engine.Push(ctx, dst); err != nil {
		return errors.Publish(err, "pushing %s", dst)
	}
	return nil
}
