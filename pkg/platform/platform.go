// Package platform models the OS/architecture targets an image is
// mirrored for.
package platform

// Platform identifies a build and execution target.
type Platform struct {
	OS   string
	Arch string
}

// String returns the identifier docker expects, e.g. "linux/amd64".
func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// Matrix returns the cross product of operating systems and architectures,
// in a deterministic order: operating systems outer, architectures inner.
// Manifest members are amended in exactly this order, so the order must be
// stable across runs.
func Matrix(oses, arches []string) []Platform {
	matrix := make([]Platform, 0, len(oses)*len(arches))
	for _, os := range oses {
		for _, arch := range arches {
			matrix = append(matrix, Platform{OS: os, Arch: arch})
		}
	}
	return matrix
}
