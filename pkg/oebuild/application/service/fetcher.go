package service

import (
	"context"
	"fmt"
	"time"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
)

// Fetcher clones every member of a repository set into its base directory.
// Cloning is a best-effort batch: a failed member never aborts the rest.
type Fetcher interface {
	CloneAll(ctx context.Context, set *model.RepositorySet) model.CloneReport
}

func NewFetcher(
	logger applogger.Logger,
	repositoryProvider RepositoryProvider,
) Fetcher {
	return &fetcher{
		logger:             logger,
		repositoryProvider: repositoryProvider,
	}
}

type fetcher struct {
	logger             applogger.Logger
	repositoryProvider RepositoryProvider
}

func (f fetcher) CloneAll(ctx context.Context, set *model.RepositorySet) model.CloneReport {
	report := make(model.CloneReport, 0, len(set.Repositories()))
	for _, repository := range set.Repositories() {
		report = append(report, f.clone(ctx, set, repository))
	}
	return report
}

// clone only clones the default branch at its tip. Branch and revision are
// carried by the manifest but not yet acted on here.
func (f fetcher) clone(ctx context.Context, set *model.RepositorySet, repository model.Repository) model.CloneResult {
	dest := set.RepositoryPath(repository.Name)
	exist, err := f.repositoryProvider.Exist(dest)
	if err != nil {
		f.logger.Error(err, fmt.Sprintf("failed to check destination for repository \"%v\"", repository.Name))
		return model.CloneResult{Repository: repository.Name, Status: model.CloneStatusFailed, Err: err}
	}
	if exist {
		f.logger.Info(fmt.Sprintf("skip repository \"%v\", %v already exists", repository.Name, dest))
		return model.CloneResult{Repository: repository.Name, Status: model.CloneStatusSkipped}
	}

	f.logger.Info(fmt.Sprintf("cloning \"%v\" into %v...", repository.Name, dest))
	start := time.Now()
	defer func() {
		f.logger.Info(fmt.Sprintf("done in %v", time.Since(start).String()))
	}()

	err = f.repositoryProvider.Clone(ctx, repository.URL, dest)
	if err != nil {
		f.logger.Error(err, fmt.Sprintf("failed to clone repository \"%v\"", repository.Name))
		return model.CloneResult{Repository: repository.Name, Status: model.CloneStatusFailed, Err: err}
	}
	return model.CloneResult{Repository: repository.Name, Status: model.CloneStatusCloned}
}
