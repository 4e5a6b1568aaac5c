package manifest

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
)

func NewLoader() *Loader {
	return &Loader{}
}

type Loader struct{}

func (l *Loader) Load(path string) ([]model.Repository, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest file %v", path)
	}
	repositories, err := Decode(body)
	return repositories, errors.Wrapf(err, "manifest file %v", path)
}

func (l *Loader) Write(w io.Writer, repositories []model.Repository) error {
	body, err := Encode(repositories)
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return errors.Wrap(err, "failed to write manifest")
}
