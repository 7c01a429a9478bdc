package docker

import (
	"fmt"
	"os"

	dconfig "github.com/docker/cli/cli/config"
	dctxdocker "github.com/docker/cli/cli/context/docker"
	dctxstore "github.com/docker/cli/cli/context/store"
	dc "github.com/docker/docker/client"

	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// determineDockerHost resolves the engine host for the API client.
// Precedence: DOCKER_HOST, then the docker context, then the system
// default socket.
func determineDockerHost() (string, error) {
	if host := os.Getenv("DOCKER_HOST"); host != "" {
		return host, nil
	}

	// DOCKER_CONTEXT names a context explicitly; without it the config
	// file's current context applies.
	if host, err := dockerHostFromContext(os.Getenv("DOCKER_CONTEXT")); err != nil {
		console.Warnf("error finding docker host from context: %v", err)

		// An explicitly named context that cannot be resolved is an error.
		// Falling back to another host would silently ignore the selection.
		if os.Getenv("DOCKER_CONTEXT") != "" {
			return "", err
		}
	} else if host != "" {
		return host, nil
	}

	return dc.DefaultDockerHost, nil
}

func dockerHostFromContext(contextName string) (string, error) {
	if contextName == "" {
		cf, err := dconfig.Load(dconfig.Dir())
		if err != nil {
			return "", err
		}
		contextName = cf.CurrentContext
	}

	typeGetter := func() any { return &dctxdocker.EndpointMeta{} }
	storeConfig := dctxstore.NewConfig(typeGetter, dctxstore.EndpointTypeGetter(dctxdocker.DockerEndpoint, typeGetter))

	store := dctxstore.New(dconfig.ContextStoreDir(), storeConfig)
	meta, err := store.GetMetadata(contextName)
	if err != nil {
		return "", err
	}

	endpoint, ok := meta.Endpoints[dctxdocker.DockerEndpoint]
	if !ok {
		return "", fmt.Errorf("no docker endpoints found for context %s", contextName)
	}

	dockerEPMeta, ok := endpoint.(dctxdocker.EndpointMeta)
	if !ok {
		return "", fmt.Errorf("invalid context config: %v", endpoint)
	}

	if dockerEPMeta.Host == "" {
		return "", fmt.Errorf("no host found for context %s", contextName)
	}

	return dockerEPMeta.Host, nil
}
