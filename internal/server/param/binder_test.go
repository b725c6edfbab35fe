package param

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/objecthub/internal/objects"
)

type stubResolver struct {
	supports bool
	binding  Binding
	err      error
	calls    int
}

func (s *stubResolver) Supports(Argument) bool {
	return s.supports
}

func (s *stubResolver) Resolve(context.Context, *Request, Argument) (Binding, error) {
	s.calls++
	return s.binding, s.err
}

func TestBinder_Bind(t *testing.T) {
	ctx := context.Background()
	binder := NewBinder(NewDataObjectParamResolver(newTestRegistry(t), nil))

	req := newTestRequest(map[string]any{
		"article": "7",
		"folder":  "",
		"page":    "2",
	})

	bindings, err := binder.Bind(ctx, req,
		Arg[*objects.Article]("article"),
		Arg[*objects.Folder]("folder").AsNullable(),
		Arg[int]("page"),
	)
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	article, ok := req.Attributes.Get("article")
	require.True(t, ok)
	assert.Equal(t, 7, article.(*objects.Article).GetID())

	folder, ok := req.Attributes.Get("folder")
	require.True(t, ok)
	assert.Nil(t, folder)

	page, _ := req.Attributes.Get("page")
	assert.Equal(t, "2", page)
}

func TestBinder_StopsAtFirstError(t *testing.T) {
	ctx := context.Background()
	binder := NewBinder(NewDataObjectParamResolver(newTestRegistry(t), nil))

	req := newTestRequest(map[string]any{"article": "8", "folder": "3"})

	bindings, err := binder.Bind(ctx, req,
		Arg[*objects.Article]("article"),
		Arg[*objects.Folder]("folder"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrObjectUnpublished)
	assert.Nil(t, bindings)

	folder, _ := req.Attributes.Get("folder")
	assert.Equal(t, "3", folder)
}

func TestBinder_ResolverChain(t *testing.T) {
	ctx := context.Background()
	article := newArticle(1, true)

	skipping := &stubResolver{supports: true}
	unsupported := &stubResolver{supports: false}
	binding := &stubResolver{supports: true, binding: bindObject("article", article)}
	last := &stubResolver{supports: true, err: errors.New("must not be called")}

	binder := NewBinder(unsupported, skipping, binding, last)
	req := newTestRequest(nil)

	bindings, err := binder.Bind(ctx, req, Arg[*objects.Article]("article"))
	require.NoError(t, err)
	require.Len(t, bindings, 1)

	assert.Equal(t, 0, unsupported.calls)
	assert.Equal(t, 1, skipping.calls)
	assert.Equal(t, 1, binding.calls)
	assert.Equal(t, 0, last.calls)

	got, _ := req.Attributes.Get("article")
	assert.Same(t, article, got)
}
