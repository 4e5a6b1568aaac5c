package service_test

import (
	"context"

	"github.com/pkg/errors"
)

// fakeProvider is an in-memory RepositoryProvider keyed by checkout path.
type fakeProvider struct {
	existing  map[string]bool
	checkouts map[string]bool
	revisions map[string]string
	branches  map[string]string
	remotes   map[string]string
	urls      map[string]string

	cloneErrs  map[string]error
	branchErrs map[string]error

	clonedURLs  []string
	clonedDests []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		existing:   make(map[string]bool),
		checkouts:  make(map[string]bool),
		revisions:  make(map[string]string),
		branches:   make(map[string]string),
		remotes:    make(map[string]string),
		urls:       make(map[string]string),
		cloneErrs:  make(map[string]error),
		branchErrs: make(map[string]error),
	}
}

func (f *fakeProvider) Exist(path string) (bool, error) {
	return f.existing[path], nil
}

func (f *fakeProvider) IsCheckout(path string) bool {
	return f.checkouts[path]
}

func (f *fakeProvider) Clone(_ context.Context, url, dest string) error {
	if err, ok := f.cloneErrs[url]; ok {
		return err
	}
	f.clonedURLs = append(f.clonedURLs, url)
	f.clonedDests = append(f.clonedDests, dest)
	return nil
}

func (f *fakeProvider) CurrentRevision(_ context.Context, path string) (string, error) {
	revision, ok := f.revisions[path]
	if !ok {
		return "", errors.Errorf("no revision for %v", path)
	}
	return revision, nil
}

func (f *fakeProvider) CurrentBranch(_ context.Context, path string) (string, error) {
	if err, ok := f.branchErrs[path]; ok {
		return "", err
	}
	branch, ok := f.branches[path]
	if !ok {
		return "", errors.Errorf("no branch for %v", path)
	}
	return branch, nil
}

func (f *fakeProvider) UpstreamRemote(_ context.Context, path string) (string, error) {
	remote, ok := f.remotes[path]
	if !ok {
		return "", errors.Errorf("no upstream remote for %v", path)
	}
	return remote, nil
}

func (f *fakeProvider) RemoteURL(_ context.Context, path, remote string) (string, error) {
	url, ok := f.urls[path+"|"+remote]
	if !ok {
		return "", errors.Errorf("no url for remote %v in %v", remote, path)
	}
	return url, nil
}
