package docker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginArgs(t *testing.T) {
	require.Equal(t, []string{
		"login",
		"--username", "AWS",
		"--password-stdin",
		"123456789012.dkr.ecr.eu-west-1.amazonaws.com",
	}, loginArgs("123456789012.dkr.ecr.eu-west-1.amazonaws.com", "AWS"))
}

func TestLoginExec(t *testing.T) {
	t.Setenv(DockerCommandEnvVarName, "echo")

	c := &apiClient{}
	err := c.Login(t.Context(), "example.registry.test", "AWS", "token")
	require.NoError(t, err)
}

func TestDockerCommandFromEnvironment(t *testing.T) {
	t.Setenv(DockerCommandEnvVarName, "")
	require.Equal(t, "docker", DockerCommandFromEnvironment())

	t.Setenv(DockerCommandEnvVarName, "podman")
	require.Equal(t, "podman", DockerCommandFromEnvironment())
}
