package bblayers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
	"github.com/oe-tools/oebuild/pkg/oebuild/application/service"
)

// The ${TOPDIR} token is bitbake's, not ours, and is written out verbatim.
const configTemplate = "LCONF_VERSION = \"5\"\n" +
	"BBPATH = \"${TOPDIR}\"\n" +
	"BBLAYERS = \" \\\n" +
	"{{range .Layers}}    {{.}} \\\n{{end}}" +
	"\"\n"

type configData struct {
	Layers []string
}

func NewWriter() service.LayerConfigWriter {
	return &writer{
		template: template.Must(template.New("bblayers").Parse(configTemplate)),
	}
}

type writer struct {
	template *template.Template
}

func (w writer) Write(out io.Writer, set *model.RepositorySet) error {
	err := w.template.Execute(out, configData{Layers: layerPaths(set)})
	return errors.Wrap(err, "failed to render layer config")
}

// WriteFile never overwrites: the generated config is write-once per
// workspace setup.
func (w writer) WriteFile(path string, set *model.RepositorySet) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(model.ErrAlreadyExists, "layer config %v", path)
		}
		return errors.Wrapf(err, "failed to create layer config %v", path)
	}
	err = w.Write(file, set)
	if err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "failed to close layer config %v", path)
}

// layerPaths lists one generated path per member layer, members in insertion
// order, layers in list order. Members without layers contribute nothing.
func layerPaths(set *model.RepositorySet) []string {
	base := filepath.Base(filepath.Clean(set.BaseDir()))
	var paths []string
	for _, repository := range set.Repositories() {
		for _, layer := range repository.Layers {
			paths = append(paths, fmt.Sprintf("${TOPDIR}/%v/%v/%v", base, repository.Name, layer))
		}
	}
	return paths
}
