package service

import (
	"context"
	"io"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
)

// RepositoryProvider is the version-control collaborator. Clone and the
// query methods shell out to the version-control client; their failures are
// surfaced as-is, never reinterpreted.
type RepositoryProvider interface {
	Exist(path string) (bool, error)
	IsCheckout(path string) bool
	Clone(ctx context.Context, url, dest string) error
	CurrentRevision(ctx context.Context, path string) (string, error)
	CurrentBranch(ctx context.Context, path string) (string, error)
	UpstreamRemote(ctx context.Context, path string) (string, error)
	RemoteURL(ctx context.Context, path, remote string) (string, error)
}

type ManifestLoader interface {
	Load(path string) ([]model.Repository, error)
	Write(w io.Writer, repositories []model.Repository) error
}

type LayerConfigWriter interface {
	Write(w io.Writer, set *model.RepositorySet) error
	WriteFile(path string, set *model.RepositorySet) error
}
