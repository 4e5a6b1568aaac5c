package manifest

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
)

// repositoryDocument is the wire form of one manifest entry. Layers stays
// raw so that an explicit null ("no layers") can be told apart from an
// absent field (default layers) in both directions.
type repositoryDocument struct {
	Name     string          `json:"name"`
	URL      string          `json:"url"`
	Branch   string          `json:"branch,omitempty"`
	Revision string          `json:"revision,omitempty"`
	Layers   json.RawMessage `json:"layers,omitempty"`
}

var nullLayers = json.RawMessage("null")

// Encode serializes repositories into a manifest document, omitting every
// field that decoding would fill back with its default.
func Encode(repositories []model.Repository) ([]byte, error) {
	documents := make([]repositoryDocument, 0, len(repositories))
	for _, repository := range repositories {
		document := repositoryDocument{
			Name: repository.Name,
			URL:  repository.URL,
		}
		if repository.Branch != model.DefaultBranch {
			document.Branch = repository.Branch
		}
		if repository.Revision != model.DefaultRevision {
			document.Revision = repository.Revision
		}
		switch {
		case repository.Layers == nil:
			document.Layers = nullLayers
		case repository.HasDefaultLayers():
			// omitted, decode restores the default
		default:
			layers, err := json.Marshal(repository.Layers)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to encode layers of repository %v", repository.Name)
			}
			document.Layers = layers
		}
		documents = append(documents, document)
	}
	body, err := json.MarshalIndent(documents, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode manifest")
	}
	return append(body, '\n'), nil
}

// Decode parses a manifest document into repositories, in document order,
// filling defaulted fields.
func Decode(body []byte) ([]model.Repository, error) {
	var documents []repositoryDocument
	err := json.Unmarshal(body, &documents)
	if err != nil {
		return nil, errors.Wrap(model.ErrMalformedManifest, err.Error())
	}
	repositories := make([]model.Repository, 0, len(documents))
	for i, document := range documents {
		if document.Name == "" {
			return nil, errors.Wrapf(model.ErrMissingField, "repository at index %v has no name", i)
		}
		if document.URL == "" {
			return nil, errors.Wrapf(model.ErrMissingField, "repository %v has no url", document.Name)
		}
		repository := model.NewRepository(document.Name, document.URL)
		if document.Branch != "" {
			repository.Branch = document.Branch
		}
		if document.Revision != "" {
			repository.Revision = document.Revision
		}
		switch {
		case document.Layers == nil:
			// absent, keep the default
		case bytes.Equal(document.Layers, nullLayers):
			repository.Layers = nil
		default:
			var layers []string
			err = json.Unmarshal(document.Layers, &layers)
			if err != nil {
				return nil, errors.Wrapf(model.ErrMalformedManifest, "repository %v: layers: %v", document.Name, err)
			}
			repository.Layers = layers
		}
		repositories = append(repositories, repository)
	}
	return repositories, nil
}
