package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorline/ecrmirror/pkg/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv(RegionEnvVarName, "eu-west-1")
	t.Setenv(RegistryEnvVarName, "123456789012.dkr.ecr.eu-west-1.amazonaws.com")
	t.Setenv(ImageListEnvVarName, "myapp/worker=1.2.0")
}

func TestFromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := FromEnvironment()
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Region)
	require.Equal(t, "123456789012.dkr.ecr.eu-west-1.amazonaws.com", cfg.Registry)
	require.Equal(t, "myapp/worker=1.2.0", cfg.ImageList)
	require.Equal(t, DefaultAgentImage, cfg.AgentImage)
}

func TestFromEnvironmentMissingVars(t *testing.T) {
	t.Setenv(RegionEnvVarName, "")
	t.Setenv(RegistryEnvVarName, "")
	t.Setenv(ImageListEnvVarName, "myapp/worker=1.2.0")

	_, err := FromEnvironment()
	require.Error(t, err)
	require.True(t, errors.IsConfig(err))
	require.Contains(t, err.Error(), RegionEnvVarName)
	require.Contains(t, err.Error(), RegistryEnvVarName)
	require.NotContains(t, err.Error(), ImageListEnvVarName)
}

func TestFromEnvironmentBadRegistry(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(RegistryEnvVarName, "not a registry host")

	_, err := FromEnvironment()
	require.Error(t, err)
	require.True(t, errors.IsConfig(err))
}

func TestAgentImageOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(AgentImageEnvVarName, "internal/agent")

	cfg, err := FromEnvironment()
	require.NoError(t, err)
	require.Equal(t, "internal/agent", cfg.AgentImage)
}

func TestRequireAgent(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := FromEnvironment()
	require.NoError(t, err)

	err = cfg.RequireAgent()
	require.Error(t, err)
	require.True(t, errors.IsConfig(err))
	require.Contains(t, err.Error(), AgentCertSecretEnvVarName)
	require.Contains(t, err.Error(), AgentCertPathEnvVarName)

	t.Setenv(AgentCertSecretEnvVarName, "/mirror/agent-ca")
	t.Setenv(AgentCertPathEnvVarName, "/usr/share/elastic-agent/ca.crt")
	cfg, err = FromEnvironment()
	require.NoError(t, err)
	require.NoError(t, cfg.RequireAgent())
}
