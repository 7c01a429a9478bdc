package docker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManifestCreateArgs(t *testing.T) {
	args := manifestCreateArgs("registry/worker:1.2.0", []string{
		"registry/worker:1.2.0-amd64",
		"registry/worker:1.2.0-arm64",
	})
	require.Equal(t, []string{
		"manifest", "create", "registry/worker:1.2.0",
		"--amend", "registry/worker:1.2.0-amd64",
		"--amend", "registry/worker:1.2.0-arm64",
	}, args)
}

func TestIsManifestNotFound(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{name: "docker wording", output: "no such manifest: registry/worker:1.2.0", want: true},
		{name: "registry wording", output: "manifest unknown: manifest unknown", want: true},
		{name: "generic wording", output: "registry/worker:1.2.0 not found", want: true},
		{name: "other error", output: "error: permission denied", want: false},
		{name: "empty output", output: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isManifestNotFound(tt.output))
		})
	}
}

func TestManifestPushExec(t *testing.T) {
	t.Setenv(DockerCommandEnvVarName, "echo")

	c := &apiClient{}
	require.NoError(t, c.ManifestPush(t.Context(), "registry/worker:1.2.0"))
}

func TestManifestRmExec(t *testing.T) {
	t.Setenv(DockerCommandEnvVarName, "echo")

	c := &apiClient{}
	require.NoError(t, c.ManifestRm(t.Context(), "registry/worker:1.2.0"))
}
