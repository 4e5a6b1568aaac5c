package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/pkg/errors"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
)

// Inspector walks the immediate subdirectories of a workspace root and
// rebuilds a repository description per checkout from version-control state.
type Inspector interface {
	Scan(ctx context.Context, root string) (model.ScanReport, error)
}

func NewInspector(
	logger applogger.Logger,
	repositoryProvider RepositoryProvider,
) Inspector {
	return &inspector{
		logger:             logger,
		repositoryProvider: repositoryProvider,
	}
}

type inspector struct {
	logger             applogger.Logger
	repositoryProvider RepositoryProvider
}

func (i inspector) Scan(ctx context.Context, root string) (model.ScanReport, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return model.ScanReport{}, errors.Wrapf(err, "failed to list workspace %v", root)
	}
	report := model.ScanReport{Set: model.NewRepositorySet(root)}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if !i.repositoryProvider.IsCheckout(path) {
			i.logger.Info(fmt.Sprintf("skip %v, not a checkout", path))
			report.Skipped = append(report.Skipped, entry.Name())
			continue
		}
		repository, inspectErr := i.inspect(ctx, entry.Name(), path)
		if inspectErr != nil {
			i.logger.Error(inspectErr, fmt.Sprintf("failed to describe checkout \"%v\"", entry.Name()))
			report.Failures = append(report.Failures, model.ScanFailure{Dir: entry.Name(), Err: inspectErr})
			continue
		}
		err = report.Set.Add(repository)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// inspect queries revision, branch, upstream remote and remote URL, in that
// order. Layer membership can not be inferred from version-control state, so
// the layers stay at their default.
func (i inspector) inspect(ctx context.Context, name, path string) (model.Repository, error) {
	revision, err := i.repositoryProvider.CurrentRevision(ctx, path)
	if err != nil {
		return model.Repository{}, err
	}
	branch, err := i.repositoryProvider.CurrentBranch(ctx, path)
	if err != nil {
		return model.Repository{}, err
	}
	remote, err := i.repositoryProvider.UpstreamRemote(ctx, path)
	if err != nil {
		return model.Repository{}, err
	}
	url, err := i.repositoryProvider.RemoteURL(ctx, path, remote)
	if err != nil {
		return model.Repository{}, err
	}
	repository := model.NewRepository(name, url)
	repository.Branch = branch
	repository.Revision = revision
	return repository, nil
}
