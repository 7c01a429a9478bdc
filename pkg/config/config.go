// Package config loads run configuration from the environment and
// validates it before any external call is made.
package config

import (
	"os"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/anchorline/ecrmirror/pkg/errors"
)

// Environment variables read by every run.
const (
	RegionEnvVarName    = "AWS_REGION"
	RegistryEnvVarName  = "ECR_REGISTRY"
	ImageListEnvVarName = "IMAGE_LIST"
)

// Environment variables for the agent image, required only when the agent
// image appears in the image list.
const (
	AgentImageEnvVarName      = "AGENT_IMAGE"
	AgentCertSecretEnvVarName = "AGENT_CERT_SECRET"
	AgentCertPathEnvVarName   = "AGENT_CERT_PATH"
)

// DefaultAgentImage is the one image that is rebuilt with a certificate
// layered in rather than mirrored verbatim.
const DefaultAgentImage = "elastic/elastic-agent"

type Config struct {
	// Region is the cloud region whose identity is exchanged for registry
	// credentials and used for secret retrieval.
	Region string
	// Registry is the destination registry host, e.g.
	// "123456789012.dkr.ecr.eu-west-1.amazonaws.com".
	Registry string
	// ImageList is the serialized image spec, parsed by pkg/imagespec.
	ImageList string

	// AgentImage is the image reference handled by the derived-build path.
	AgentImage string
	// AgentCertSecret names the secret store parameter holding the
	// certificate layered into the agent image.
	AgentCertSecret string
	// AgentCertPath is where the certificate lands inside the derived image.
	AgentCertPath string
}

// FromEnvironment loads and validates the always-required variables.
// Agent variables are read here but only enforced by RequireAgent, since
// they are needed only when the agent image is part of the run.
func FromEnvironment() (*Config, error) {
	cfg := &Config{
		Region:          os.Getenv(RegionEnvVarName),
		Registry:        os.Getenv(RegistryEnvVarName),
		ImageList:       os.Getenv(ImageListEnvVarName),
		AgentImage:      os.Getenv(AgentImageEnvVarName),
		AgentCertSecret: os.Getenv(AgentCertSecretEnvVarName),
		AgentCertPath:   os.Getenv(AgentCertPathEnvVarName),
	}
	if cfg.AgentImage == "" {
		cfg.AgentImage = DefaultAgentImage
	}

	var missing []string
	if cfg.Region == "" {
		missing = append(missing, RegionEnvVarName)
	}
	if cfg.Registry == "" {
		missing = append(missing, RegistryEnvVarName)
	}
	if cfg.ImageList == "" {
		missing = append(missing, ImageListEnvVarName)
	}
	if len(missing) > 0 {
		return nil, errors.Config("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if _, err := name.NewRegistry(cfg.Registry); err != nil {
		return nil, errors.Config("invalid registry host %q: %s", cfg.Registry, err)
	}

	return cfg, nil
}

// RequireAgent checks the configuration needed for the agent derived build.
func (c *Config) RequireAgent() error {
	var missing []string
	if c.AgentCertSecret == "" {
		missing = append(missing, AgentCertSecretEnvVarName)
	}
	if c.AgentCertPath == "" {
		missing = append(missing, AgentCertPathEnvVarName)
	}
	if len(missing) > 0 {
		return errors.Config("image list contains %s but %s not set", c.AgentImage, strings.Join(missing, ", "))
	}
	return nil
}
