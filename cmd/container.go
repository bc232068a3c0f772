package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitbridge/application"
	providerPkg "github.com/rios0rios0/gitbridge/infrastructure/provider"
	"github.com/rios0rios0/gitbridge/infrastructure/provider/azuredevops"
)

// newProviderRegistry builds the registry with every supported Git service.
func newProviderRegistry() *providerPkg.Registry {
	registry := providerPkg.NewRegistry()
	registry.Register("azuredevops", azuredevops.New)
	return registry
}

// injectBridgeService wires the registry and service through the DIG container.
func injectBridgeService() *application.BridgeService {
	container := dig.New()

	if err := container.Provide(newProviderRegistry); err != nil {
		panic(err)
	}
	if err := container.Provide(application.NewBridgeService); err != nil {
		panic(err)
	}

	var service *application.BridgeService
	if err := container.Invoke(func(s *application.BridgeService) {
		service = s
	}); err != nil {
		panic(err)
	}

	return service
}
