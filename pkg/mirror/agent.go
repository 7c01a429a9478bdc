package mirror

import (
	"context"
	"fmt"

	"github.com/anchorline/ecrmirror/pkg/docker/command"
	"github.com/anchorline/ecrmirror/pkg/errors"
	"github.com/anchorline/ecrmirror/pkg/platform"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// The agent image is not mirrored verbatim: its upstream artifact is
// rebuilt with a certificate layered in at a configured path, so agents
// pulled from the private registry trust the fleet's CA out of the box.

const (
	agentCertFileName   = "ca.crt"
	agentDockerfileName = "Dockerfile"

	// AgentVersionBuildArg selects the upstream tag at build time, so one
	// generated recipe serves every (tag, platform) combination.
	AgentVersionBuildArg = "AGENT_VERSION"
)

type agentBuild struct {
	dockerfilePath string
	certPath       string
}

// PrepareDerivedBuild fetches the certificate from the secret store and
// materializes it together with the generated build recipe in the run's
// scratch directory. It runs at most once per run; subsequent calls are
// no-ops. Both files are removed by Cleanup on every exit path.
func (m *Mirror) PrepareDerivedBuild(ctx context.Context) error {
	if m.agent != nil {
		return nil
	}
	if err := m.cfg.RequireAgent(); err != nil {
		return err
	}

	console.Infof("Preparing derived build for %s", m.cfg.AgentImage)

	cert, err := m.secrets.Get(ctx, m.cfg.AgentCertSecret)
	if err != nil {
		return errors.SecretRetrieval(err, "fetching certificate %q", m.cfg.AgentCertSecret)
	}

	scratch, err := m.ensureScratch()
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}

	certPath, err := scratch.WriteFile(agentCertFileName, []byte(cert), 0o600)
	if err != nil {
		return fmt.Errorf("writing certificate: %w", err)
	}
	dockerfilePath, err := scratch.WriteFile(agentDockerfileName, []byte(agentDockerfile(m.cfg.AgentImage, m.cfg.AgentCertPath)), 0o644)
	if err != nil {
		return fmt.Errorf("writing build recipe: %w", err)
	}

	m.agent = &agentBuild{dockerfilePath: dockerfilePath, certPath: certPath}
	return nil
}

func (m *Mirror) buildAgent(ctx context.Context, tag string, p platform.Platform, dst string) error {
	if m.agent == nil {
		return fmt.Errorf("derived build for %s is not prepared", m.cfg.AgentImage)
	}
	return m.engine.Build(ctx, command.BuildOptions{
		DockerfilePath: m.agent.dockerfilePath,
		ContextDir:     m.scratch.Dir(),
		ImageName:      dst,
		Platform:       p.String(),
		BuildArgs:      map[string]string{AgentVersionBuildArg: tag},
	})
}

func agentDockerfile(image string, certPath string) string {
	return "ARG " + AgentVersionBuildArg + "\n" +
		"FROM " + image + ":${" + AgentVersionBuildArg + "}\n" +
		"COPY " + agentCertFileName + " " + certPath + "\n"
}
