package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	db, err := Open(Config{
		Dialect: "sqlite3",
		DSN:     fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background()))

	return db
}

func TestOpen_InvalidDialect(t *testing.T) {
	_, err := Open(Config{Dialect: "oracle"})
	require.Error(t, err)
}

func TestDB_SaveAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	rec := &Record{
		Class:     "article",
		Key:       "hello-world",
		Published: true,
		Data:      json.RawMessage(`{"title":"Hello"}`),
	}
	require.NoError(t, db.Save(ctx, rec))
	require.NotZero(t, rec.ID)

	got, err := db.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "article", got.Class)
	assert.Equal(t, "hello-world", got.Key)
	assert.Equal(t, "/", got.Path)
	assert.True(t, got.Published)
	assert.JSONEq(t, `{"title":"Hello"}`, string(got.Data))
	assert.Equal(t, rec.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
}

func TestDB_Upsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	rec := &Record{ID: 42, Class: "folder", Key: "news"}
	require.NoError(t, db.Save(ctx, rec))

	rec.Published = true
	rec.Key = "latest-news"
	require.NoError(t, db.Save(ctx, rec))

	got, err := db.Get(ctx, 42)
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.Equal(t, "latest-news", got.Key)
	assert.Nil(t, got.Data)
}

func TestDB_GetMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Get(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDB_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	rec := &Record{Class: "product", Key: "mug"}
	require.NoError(t, db.Save(ctx, rec))
	require.NoError(t, db.Delete(ctx, rec.ID))

	_, err := db.Get(ctx, rec.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.Delete(ctx, rec.ID))
}
