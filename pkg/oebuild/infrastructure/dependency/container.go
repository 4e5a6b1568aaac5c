package dependency

import (
	"context"
	"errors"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/service"
	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/bblayers"
	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/command"
	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/config/manifest"
	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/provider"
)

var dependencyContainer = struct{}{}

type Container interface {
	Workspace() service.Workspace
	RepositoryProvider() service.RepositoryProvider
}

func NewDependencyContainer(logger applogger.Logger) Container {
	runner := command.NewCommandRunner(logger)
	repositoryProvider := provider.NewGitProvider(runner)
	fetcher := service.NewFetcher(logger, repositoryProvider)
	inspector := service.NewInspector(logger, repositoryProvider)
	workspaceService := service.NewWorkspaceService(logger, manifest.NewLoader(), fetcher, inspector, bblayers.NewWriter())

	return &container{
		workspace:          workspaceService,
		repositoryProvider: repositoryProvider,
	}
}

type container struct {
	workspace          service.Workspace
	repositoryProvider service.RepositoryProvider
}

func (c *container) Workspace() service.Workspace {
	return c.workspace
}

func (c *container) RepositoryProvider() service.RepositoryProvider {
	return c.repositoryProvider
}

func ContainerFromContext(ctx context.Context) (Container, error) {
	v := ctx.Value(dependencyContainer)
	if c, ok := v.(Container); ok {
		return c, nil
	}
	return nil, errors.New("dependency container not found")
}

func ContainerToContext(ctx context.Context, c Container) context.Context {
	return context.WithValue(ctx, dependencyContainer, c)
}
