package global

import "time"

var (
	Version   = "0.0.1"
	BuildTime = "none"
	Verbose   = false

	// EngineCallTimeout bounds every call shelled out to the engine, so a
	// hung pull or push fails the run instead of stalling it forever.
	EngineCallTimeout = 30 * time.Minute
)

// Platforms mirrored into the destination registry. Order matters:
// manifests are amended in matrix order, operating systems outer,
// architectures inner.
var (
	OperatingSystems = []string{"linux"}
	Architectures    = []string{"amd64", "arm64"}
)

// BuilderName is the buildx builder context created by `ecrmirror setup`
// and used for every cross-platform build.
const BuilderName = "ecrmirror-builder"
