package main

import (
	"context"

	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/dependency"
)

func setup(ctx context.Context, manifestPath, sourceDir, confDir string) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	return dependencyContainer.Workspace().Setup(ctx, manifestPath, sourceDir, confDir)
}
