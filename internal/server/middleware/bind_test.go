package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/server/param"
)

func newTestBinder(t *testing.T) *param.Binder {
	t.Helper()

	articles := map[int]*objects.Article{
		1: {Base: objects.Base{ID: 1, Class: objects.ClassArticle, Published: true}, Title: "Public"},
		2: {Base: objects.Base{ID: 2, Class: objects.ClassArticle}, Title: "Draft"},
	}

	registry := objects.NewRegistry()
	require.NoError(t, objects.Register[*objects.Article](registry, objects.ClassArticle,
		objects.RepositoryFunc(func(_ context.Context, id int) (objects.DataObject, error) {
			if id == 500 {
				return nil, errors.New("database is down")
			}

			a, ok := articles[id]
			if !ok {
				return nil, objects.ErrNotFound
			}

			return a, nil
		})))

	resolver := param.NewDataObjectParamResolver(registry, authz.NewDefaultAdminChecker(authz.Config{}, ""))

	return param.NewBinder(resolver)
}

func TestBindArguments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	binder := newTestBinder(t)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if c.GetHeader("X-Admin") != "" {
			c.Request = c.Request.WithContext(authz.NewUserContext(c.Request.Context(), 1, true))
		}

		c.Next()
	})

	handler := func(c *gin.Context) {
		article, ok := BoundValue[*objects.Article](c, "article")
		if !ok {
			c.String(http.StatusOK, "none")
			return
		}

		c.String(http.StatusOK, article.Title)
	}

	router.GET("/articles/:article", BindArguments(binder, param.Arg[*objects.Article]("article")), handler)
	router.GET("/admin/articles/:article", BindArguments(binder, param.Arg[*objects.Article]("article")), handler)
	router.GET("/feed/:article", BindArguments(binder, param.Arg[*objects.Article]("article").AsNullable()), handler)

	tests := []struct {
		name     string
		path     string
		admin    bool
		wantCode int
		wantBody string
	}{
		{name: "published", path: "/articles/1", wantCode: http.StatusOK, wantBody: "Public"},
		{name: "missing", path: "/articles/99", wantCode: http.StatusNotFound},
		{name: "not numeric", path: "/articles/abc", wantCode: http.StatusNotFound},
		{name: "unpublished", path: "/articles/2", wantCode: http.StatusNotFound},
		{name: "admin preview", path: "/articles/2?object_preview=2", admin: true, wantCode: http.StatusOK, wantBody: "Draft"},
		{name: "admin path", path: "/admin/articles/2", admin: true, wantCode: http.StatusOK, wantBody: "Draft"},
		{name: "admin path anonymous", path: "/admin/articles/2", wantCode: http.StatusNotFound},
		{name: "nullable zero", path: "/feed/0", wantCode: http.StatusOK, wantBody: "none"},
		{name: "storage failure", path: "/articles/500", wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.admin {
				r.Header.Set("X-Admin", "1")
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestBindArguments_ErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/articles/:article", BindArguments(newTestBinder(t), param.Arg[*objects.Article]("article")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles/2", nil))

	var resp objects.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Not Found", resp.Error.Type)
	assert.Equal(t, `Data object for parameter "article" is not published.`, resp.Error.Message)
}

func TestBindArguments_LegacyConverters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/legacy/:content",
		func(c *gin.Context) {
			c.Set(param.ConvertersAttribute, []param.LegacyConverter{{
				Class:   objects.ClassArticle,
				Options: map[string]any{"unpublished": true},
			}})
			c.Next()
		},
		BindArguments(newTestBinder(t), param.Arg[objects.Content]("content")),
		func(c *gin.Context) {
			content, ok := BoundValue[objects.Content](c, "content")
			require.True(t, ok)
			c.String(http.StatusOK, content.GetTitle())
		},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/legacy/2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Draft", w.Body.String())
}

func TestBoundValue_WrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("folder", &objects.Article{})

	_, ok := BoundValue[*objects.Folder](c, "folder")
	assert.False(t, ok)

	_, ok = BoundValue[*objects.Folder](c, "missing")
	assert.False(t, ok)
}
