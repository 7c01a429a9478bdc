package docker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorline/ecrmirror/pkg/docker/command"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name     string
		options  command.BuildOptions
		expected []string
	}{
		{
			name: "basic build",
			options: command.BuildOptions{
				DockerfilePath: "/tmp/scratch/Dockerfile",
				ContextDir:     "/tmp/scratch",
				ImageName:      "registry/elastic-agent:8.10.0-arm64",
				Platform:       "linux/arm64",
			},
			expected: []string{
				"buildx", "build",
				"--builder", "ecrmirror-builder",
				"--platform", "linux/arm64",
				"--load",
				"--file", "/tmp/scratch/Dockerfile",
				"--tag", "registry/elastic-agent:8.10.0-arm64",
				"/tmp/scratch",
			},
		},
		{
			name: "build args are sorted",
			options: command.BuildOptions{
				DockerfilePath: "Dockerfile",
				ContextDir:     ".",
				ImageName:      "some-image",
				Platform:       "linux/amd64",
				BuildArgs: map[string]string{
					"B_SECOND": "2",
					"A_FIRST":  "1",
				},
			},
			expected: []string{
				"buildx", "build",
				"--builder", "ecrmirror-builder",
				"--platform", "linux/amd64",
				"--load",
				"--build-arg", "A_FIRST=1",
				"--build-arg", "B_SECOND=2",
				"--file", "Dockerfile",
				"--tag", "some-image",
				".",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, buildArgs(tt.options))
		})
	}
}

func TestBuilderCreateArgs(t *testing.T) {
	require.Equal(t, []string{
		"buildx", "create",
		"--name", "ecrmirror-builder",
		"--driver", "docker-container",
		"--bootstrap",
		"--use",
	}, builderCreateArgs("ecrmirror-builder"))
}

func TestBuildExec(t *testing.T) {
	t.Setenv(DockerCommandEnvVarName, "echo")

	c := &apiClient{}
	err := c.Build(t.Context(), command.BuildOptions{
		DockerfilePath: "Dockerfile",
		ContextDir:     ".",
		ImageName:      "some-image",
		Platform:       "linux/amd64",
	})
	require.NoError(t, err)
}
