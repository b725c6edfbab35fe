package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/objecthub/internal/authz"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "missing", wantErr: ErrMissingToken},
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "basic", header: "Basic abc", wantErr: ErrInvalidBearer},
		{name: "empty token", header: "Bearer ", wantErr: ErrInvalidBearer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := ExtractBearerToken(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := authz.NewAuthenticator(authz.Config{SecretKey: "secret"})
	token, err := auth.GenerateToken(9, true)
	require.NoError(t, err)

	newRouter := func(required bool) *gin.Engine {
		router := gin.New()
		router.Use(WithJWTAuth(auth, required))
		router.GET("/", func(c *gin.Context) {
			p, ok := authz.GetPrincipal(c.Request.Context())
			if !ok {
				c.String(http.StatusOK, "anonymous")
				return
			}

			c.String(http.StatusOK, p.String())
		})

		return router
	}

	serve := func(router *gin.Engine, header string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		return w
	}

	t.Run("optional anonymous", func(t *testing.T) {
		w := serve(newRouter(false), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("optional with token", func(t *testing.T) {
		w := serve(newRouter(false), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin:9", w.Body.String())
	})

	t.Run("optional with bad token", func(t *testing.T) {
		w := serve(newRouter(false), "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("required anonymous", func(t *testing.T) {
		w := serve(newRouter(true), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("auth disabled", func(t *testing.T) {
		router := gin.New()
		router.Use(WithJWTAuth(authz.NewAuthenticator(authz.Config{}), false))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := serve(router, "Bearer "+token)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
