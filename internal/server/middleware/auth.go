package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/log"
)

// WithJWTAuth authenticates bearer tokens and stores the principal in the request context.
// When required is false, anonymous requests pass without a principal, but a bad token is
// still rejected.
func WithJWTAuth(auth *authz.Authenticator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth == nil || !auth.Enabled() {
			if required {
				abortWithMessage(c, http.StatusUnauthorized, authz.ErrAuthDisable, "Authentication is not configured")
				return
			}

			c.Next()

			return
		}

		token, err := ExtractBearerToken(c.Request)
		if err != nil {
			if errors.Is(err, ErrMissingToken) && !required {
				c.Next()
				return
			}

			AbortWithError(c, http.StatusUnauthorized, err)

			return
		}

		principal, err := auth.Authenticate(token)
		if err != nil {
			log.Debug(c.Request.Context(), "invalid token", log.Cause(err))
			abortWithMessage(c, http.StatusUnauthorized, err, "Invalid token")

			return
		}

		ctx, err := authz.WithPrincipal(c.Request.Context(), principal)
		if err != nil {
			abortWithMessage(c, http.StatusUnauthorized, err, "Invalid token")
			return
		}

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
