// Package mirror orchestrates multi-architecture image mirroring: it
// publishes upstream images per architecture under architecture-qualified
// tags, then assembles those tags into one multi-arch manifest per
// (image, tag) that resolves correctly on any architecture.
//
// A run has two sequential phases. The publish phase (`ecrmirror build`)
// must complete for every architecture before the manifest phase
// (`ecrmirror push`) starts, because manifest assembly references the
// architecture-qualified tags in the registry.
package mirror

import (
	"strings"

	"github.com/anchorline/ecrmirror/pkg/config"
	"github.com/anchorline/ecrmirror/pkg/docker/command"
	"github.com/anchorline/ecrmirror/pkg/global"
	"github.com/anchorline/ecrmirror/pkg/imagespec"
	"github.com/anchorline/ecrmirror/pkg/platform"
	"github.com/anchorline/ecrmirror/pkg/secrets"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

type Mirror struct {
	engine    command.Command
	secrets   secrets.Store
	cfg       *config.Config
	platforms []platform.Platform
	entries   []imagespec.Entry

	scratch *Scratch
	agent   *agentBuild
}

func New(engine command.Command, store secrets.Store, cfg *config.Config, entries []imagespec.Entry) *Mirror {
	return &Mirror{
		engine:    engine,
		secrets:   store,
		cfg:       cfg,
		platforms: platform.Matrix(global.OperatingSystems, global.Architectures),
		entries:   entries,
	}
}

// Cleanup removes every file generated during the run. Callers defer it
// right after New so removal happens on error exits too.
func (m *Mirror) Cleanup() {
	if m.scratch == nil {
		return
	}
	if err := m.scratch.Cleanup(); err != nil {
		console.Warnf("failed to remove scratch directory %s: %s", m.scratch.Dir(), err)
	}
	m.scratch = nil
	m.agent = nil
}

func (m *Mirror) ensureScratch() (*Scratch, error) {
	if m.scratch == nil {
		scratch, err := NewScratch()
		if err != nil {
			return nil, err
		}
		m.scratch = scratch
	}
	return m.scratch, nil
}

// destinationRef is the architecture-qualified reference an artifact is
// published under: {registry}/{name}:{tag}-{arch}. The OS component is
// deliberately absent from the tag.
func (m *Mirror) destinationRef(image string, tag string, arch string) string {
	return m.cfg.Registry + "/" + imageName(image) + ":" + tag + "-" + arch
}

// manifestRef is the unsuffixed reference end users pull.
func (m *Mirror) manifestRef(image string, tag string) string {
	return m.cfg.Registry + "/" + imageName(image) + ":" + tag
}

// imageName strips any path prefix from an image reference, so
// "elastic/elastic-agent" lands in the destination namespace as
// "elastic-agent".
func imageName(image string) string {
	if i := strings.LastIndex(image, "/"); i >= 0 {
		return image[i+1:]
	}
	return image
}

func (m *Mirror) needsAgent() bool {
	for _, entry := range m.entries {
		if entry.Image == m.cfg.AgentImage {
			return true
		}
	}
	return false
}
