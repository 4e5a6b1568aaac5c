package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/dependency"
)

func writeManifest(ctx context.Context, sourceDir, outputPath string) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	out := io.Writer(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create manifest file %v: %w", outputPath, err)
		}
		defer file.Close()
		out = file
	}
	return dependencyContainer.Workspace().Manifest(ctx, sourceDir, out)
}
