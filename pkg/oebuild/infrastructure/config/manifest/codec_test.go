package manifest

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oe-tools/oebuild/pkg/oebuild/application/model"
)

func TestDecodeFillsDefaults(t *testing.T) {
	repositories, err := Decode([]byte(`[{"name": "meta-foo", "url": "git://example.com/meta-foo"}]`))
	require.NoError(t, err)
	require.Len(t, repositories, 1)
	assert.Equal(t, "meta-foo", repositories[0].Name)
	assert.Equal(t, "git://example.com/meta-foo", repositories[0].URL)
	assert.Equal(t, "master", repositories[0].Branch)
	assert.Equal(t, "HEAD", repositories[0].Revision)
	assert.Equal(t, []string{"./"}, repositories[0].Layers)
}

func TestDecodeLayers(t *testing.T) {
	repositories, err := Decode([]byte(`[
		{"name": "defaulted", "url": "u"},
		{"name": "none", "url": "u", "layers": null},
		{"name": "listed", "url": "u", "layers": ["a", "b"]}
	]`))
	require.NoError(t, err)
	require.Len(t, repositories, 3)
	assert.Equal(t, []string{"./"}, repositories[0].Layers)
	assert.Nil(t, repositories[1].Layers)
	assert.Equal(t, []string{"a", "b"}, repositories[2].Layers)
}

func TestDecodeMissingFields(t *testing.T) {
	_, err := Decode([]byte(`[{"url": "u"}]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMissingField))

	_, err = Decode([]byte(`[{"name": "meta-foo"}]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMissingField))
}

func TestDecodeMalformedManifest(t *testing.T) {
	for _, body := range []string{
		`{"name": "meta-foo", "url": "u"}`,
		`[1, 2]`,
		`[{"name": "meta-foo", "url": "u", "layers": "not-a-list"}]`,
		`not json at all`,
	} {
		_, err := Decode([]byte(body))
		require.Error(t, err, body)
		assert.True(t, errors.Is(err, model.ErrMalformedManifest), body)
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	repositories := []model.Repository{
		newTestRepository("plain", nil),
		newTestRepository("custom", func(r *model.Repository) {
			r.Branch = "dev"
			r.Revision = "0123abc"
			r.Layers = []string{"meta/", "meta-extra/"}
		}),
		newTestRepository("bare", func(r *model.Repository) {
			r.Layers = nil
		}),
	}
	body, err := Encode(repositories)
	require.NoError(t, err)

	var documents []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &documents))
	require.Len(t, documents, 3)

	assert.NotContains(t, documents[0], "branch")
	assert.NotContains(t, documents[0], "revision")
	assert.NotContains(t, documents[0], "layers")

	assert.JSONEq(t, `"dev"`, string(documents[1]["branch"]))
	assert.JSONEq(t, `"0123abc"`, string(documents[1]["revision"]))
	assert.JSONEq(t, `["meta/", "meta-extra/"]`, string(documents[1]["layers"]))

	require.Contains(t, documents[2], "layers")
	assert.Equal(t, "null", string(documents[2]["layers"]))
}

func TestRoundTripAfterFirstDecode(t *testing.T) {
	body := []byte(`[
		{"name": "meta-foo", "url": "u1"},
		{"name": "meta-bar", "url": "u2", "branch": "dev", "revision": "0123abc", "layers": ["a", "b"]},
		{"name": "meta-baz", "url": "u3", "layers": null}
	]`)
	first, err := Decode(body)
	require.NoError(t, err)
	encoded, err := Encode(first)
	require.NoError(t, err)
	second, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func newTestRepository(name string, mutate func(*model.Repository)) model.Repository {
	repository := model.NewRepository(name, "git://example.com/"+name)
	if mutate != nil {
		mutate(&repository)
	}
	return repository
}
