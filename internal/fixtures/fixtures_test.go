package fixtures

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/store"
)

type recordingSaver struct {
	records []*store.Record
}

func (s *recordingSaver) Save(_ context.Context, rec *store.Record) error {
	s.records = append(s.records, rec)
	return nil
}

func newRegistry(t *testing.T) *objects.Registry {
	t.Helper()

	repo := objects.RepositoryFunc(func(context.Context, int) (objects.DataObject, error) {
		return nil, objects.ErrNotFound
	})

	registry := objects.NewRegistry()
	require.NoError(t, objects.Register[*objects.Article](registry, objects.ClassArticle, repo))
	require.NoError(t, objects.Register[*objects.Product](registry, objects.ClassProduct, repo))

	return registry
}

func TestLoader_Load(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/fixtures/objects.yml", []byte(`
objects:
  - id: 1
    class: article
    key: hello
    path: /news
    published: true
    data:
      title: Hello
      tags: [go, cms]
  - id: 2
    class: product
    key: lamp
    data:
      name: Lamp
      price: "9.90"
`), 0o644))

	saver := &recordingSaver{}
	loader := NewLoader(fs, newRegistry(t), saver)

	n, err := loader.Load(context.Background(), "/fixtures/objects.yml")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, saver.records, 2)

	article := saver.records[0]
	assert.Equal(t, 1, article.ID)
	assert.True(t, article.Published)
	assert.Equal(t, "Hello", gjson.GetBytes(article.Data, "title").String())
	assert.Equal(t, "cms", gjson.GetBytes(article.Data, "tags.1").String())

	product := saver.records[1]
	assert.False(t, product.Published)
	assert.Equal(t, "9.90", gjson.GetBytes(product.Data, "price").String())
}

func TestLoader_Invalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "objects.yml", []byte(`
objects:
  - class: gallery
    key: one
  - class: article
  - class: product
    key: lamp
    data:
      price: cheap
`), 0o644))

	saver := &recordingSaver{}
	loader := NewLoader(fs, newRegistry(t), saver)

	_, err := loader.Load(context.Background(), "objects.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown class "gallery"`)
	assert.Contains(t, err.Error(), "key is required")
	assert.Contains(t, err.Error(), "invalid price")
	assert.Empty(t, saver.records)

	_, err = loader.Load(context.Background(), "missing.yml")
	require.Error(t, err)
}
