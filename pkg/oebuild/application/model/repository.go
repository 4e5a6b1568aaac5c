package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type RepositoryName = string

const (
	DefaultBranch   = "master"
	DefaultRevision = "HEAD"
)

// DefaultLayers returns a fresh default layer list: the checkout root itself
// is the only layer. Callers get their own slice, never a shared one.
func DefaultLayers() []string {
	return []string{"./"}
}

// Repository describes one git repository of the build tree. Layers lists
// the build-layer sub-paths inside the checkout; nil means the repository
// contributes no layers at all.
type Repository struct {
	Name     RepositoryName
	URL      string
	Branch   string
	Revision string
	Layers   []string
}

func NewRepository(name RepositoryName, url string) Repository {
	return Repository{
		Name:     name,
		URL:      url,
		Branch:   DefaultBranch,
		Revision: DefaultRevision,
		Layers:   DefaultLayers(),
	}
}

func (r Repository) HasDefaultLayers() bool {
	return len(r.Layers) == 1 && r.Layers[0] == "./"
}

func (r Repository) String() string {
	layers := "none"
	if r.Layers != nil {
		layers = strings.Join(r.Layers, " ")
	}
	return fmt.Sprintf("name:     %v\n"+
		"url:      %v\n"+
		"branch:   %v\n"+
		"revision: %v\n"+
		"layers:   %v\n", r.Name, r.URL, r.Branch, r.Revision, layers)
}

// RepositorySet is an ordered collection of repositories bound to the
// directory their checkouts live in. Member order is preserved and drives
// the generated layer config line order.
type RepositorySet struct {
	baseDir      string
	repositories []Repository
	names        map[RepositoryName]struct{}
}

func NewRepositorySet(baseDir string) *RepositorySet {
	return &RepositorySet{
		baseDir: baseDir,
		names:   make(map[RepositoryName]struct{}),
	}
}

func (s *RepositorySet) Add(repository Repository) error {
	if _, ok := s.names[repository.Name]; ok {
		return errors.Wrapf(ErrDuplicateName, "repository %v", repository.Name)
	}
	s.names[repository.Name] = struct{}{}
	s.repositories = append(s.repositories, repository)
	return nil
}

func (s *RepositorySet) Repositories() []Repository {
	return s.repositories
}

func (s *RepositorySet) BaseDir() string {
	return s.baseDir
}

// RepositoryPath returns the checkout directory for a member.
func (s *RepositorySet) RepositoryPath(name RepositoryName) string {
	return filepath.Join(s.baseDir, name)
}
