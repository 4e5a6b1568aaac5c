package main

import (
	"context"
	"os"

	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/dependency"
)

func status(ctx context.Context, sourceDir string) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	return dependencyContainer.Workspace().Status(ctx, sourceDir, os.Stdout)
}
