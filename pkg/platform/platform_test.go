package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrixSize(t *testing.T) {
	tests := []struct {
		name   string
		oses   []string
		arches []string
		want   int
	}{
		{
			name:   "single os two arches",
			oses:   []string{"linux"},
			arches: []string{"amd64", "arm64"},
			want:   2,
		},
		{
			name:   "two oses three arches",
			oses:   []string{"linux", "windows"},
			arches: []string{"amd64", "arm64", "s390x"},
			want:   6,
		},
		{
			name:   "no arches",
			oses:   []string{"linux"},
			arches: nil,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix := Matrix(tt.oses, tt.arches)
			require.Len(t, matrix, tt.want)

			seen := make(map[Platform]bool)
			for _, p := range matrix {
				require.False(t, seen[p], "duplicate platform %s", p)
				seen[p] = true
			}
		})
	}
}

func TestMatrixOrder(t *testing.T) {
	matrix := Matrix([]string{"linux", "windows"}, []string{"amd64", "arm64"})
	want := []Platform{
		{OS: "linux", Arch: "amd64"},
		{OS: "linux", Arch: "arm64"},
		{OS: "windows", Arch: "amd64"},
		{OS: "windows", Arch: "arm64"},
	}
	require.Equal(t, want, matrix)
}

func TestString(t *testing.T) {
	require.Equal(t, "linux/arm64", Platform{OS: "linux", Arch: "arm64"}.String())
}
