package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/pkg/errors"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
)

const layerConfigFileName = "bblayers.conf"

// Workspace implements the top level operations on a build tree.
type Workspace interface {
	Setup(ctx context.Context, manifestPath, sourceDir, confDir string) error
	Manifest(ctx context.Context, sourceDir string, out io.Writer) error
	Status(ctx context.Context, sourceDir string, out io.Writer) error
}

func NewWorkspaceService(
	logger applogger.Logger,
	manifests ManifestLoader,
	fetcher Fetcher,
	inspector Inspector,
	layerWriter LayerConfigWriter,
) Workspace {
	return &workspace{
		logger:      logger,
		manifests:   manifests,
		fetcher:     fetcher,
		inspector:   inspector,
		layerWriter: layerWriter,
	}
}

type workspace struct {
	logger      applogger.Logger
	manifests   ManifestLoader
	fetcher     Fetcher
	inspector   Inspector
	layerWriter LayerConfigWriter
}

func (service workspace) Setup(ctx context.Context, manifestPath, sourceDir, confDir string) error {
	repositories, err := service.manifests.Load(manifestPath)
	if err != nil {
		return err
	}
	set := model.NewRepositorySet(sourceDir)
	for _, repository := range repositories {
		err = set.Add(repository)
		if err != nil {
			return err
		}
	}

	err = os.MkdirAll(sourceDir, 0o755)
	if err != nil {
		return errors.Wrapf(err, "failed to create source directory %v", sourceDir)
	}
	report := service.fetcher.CloneAll(ctx, set)
	if failed := report.FailedCount(); failed > 0 {
		service.logger.Info(fmt.Sprintf("%v of %v repositories failed to clone", failed, len(report)))
	}

	err = os.MkdirAll(confDir, 0o755)
	if err != nil {
		return errors.Wrapf(err, "failed to create conf directory %v", confDir)
	}
	return service.layerWriter.WriteFile(filepath.Join(confDir, layerConfigFileName), set)
}

func (service workspace) Manifest(ctx context.Context, sourceDir string, out io.Writer) error {
	report, err := service.inspector.Scan(ctx, sourceDir)
	if err != nil {
		return err
	}
	if len(report.Failures) > 0 {
		service.logger.Info(fmt.Sprintf("%v checkouts could not be described", len(report.Failures)))
	}
	return service.manifests.Write(out, report.Set.Repositories())
}

func (service workspace) Status(ctx context.Context, sourceDir string, out io.Writer) error {
	report, err := service.inspector.Scan(ctx, sourceDir)
	if err != nil {
		return err
	}
	for _, repository := range report.Set.Repositories() {
		_, err = fmt.Fprintln(out, repository)
		if err != nil {
			return errors.Wrap(err, "failed to write status")
		}
	}
	return nil
}
