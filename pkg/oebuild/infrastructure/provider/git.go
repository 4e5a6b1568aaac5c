package provider

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/service"
	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/command"
)

func NewGitProvider(runner command.Runner) service.RepositoryProvider {
	return &gitProvider{
		runner: runner,
	}
}

type gitProvider struct {
	runner command.Runner
}

func (provider gitProvider) Exist(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (provider gitProvider) IsCheckout(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}

func (provider gitProvider) Clone(ctx context.Context, url, dest string) error {
	_, err := provider.runner.Execute(ctx, command.Command{
		Executable: "git",
		Args:       []string{"clone", "--progress", url, dest},
	})
	return errors.Wrapf(err, "failed to clone %v into %v", url, dest)
}

func (provider gitProvider) CurrentRevision(ctx context.Context, path string) (string, error) {
	revision, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    path,
		Executable: "git",
		Args:       []string{"rev-parse", "HEAD"},
	})
	return revision, errors.Wrapf(err, "failed to resolve HEAD of %v", path)
}

func (provider gitProvider) CurrentBranch(ctx context.Context, path string) (string, error) {
	// fails on a detached HEAD, which the caller treats as a per-checkout
	// failure
	branch, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    path,
		Executable: "git",
		Args:       []string{"symbolic-ref", "--short", "HEAD"},
	})
	return branch, errors.Wrapf(err, "failed to resolve branch of %v", path)
}

func (provider gitProvider) UpstreamRemote(ctx context.Context, path string) (string, error) {
	branch, err := provider.CurrentBranch(ctx, path)
	if err != nil {
		return "", err
	}
	remote, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    path,
		Executable: "git",
		Args:       []string{"config", "branch." + branch + ".remote"},
	})
	return remote, errors.Wrapf(err, "failed to resolve upstream remote of %v", path)
}

func (provider gitProvider) RemoteURL(ctx context.Context, path, remote string) (string, error) {
	url, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    path,
		Executable: "git",
		Args:       []string{"remote", "get-url", remote},
	})
	return url, errors.Wrapf(err, "failed to resolve url of remote %v in %v", remote, path)
}
