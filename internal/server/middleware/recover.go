package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/looplj/objecthub/internal/log"
)

// Recovery turns handler panics into 500 responses and logs the stack.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "panic recovered",
			log.Any("panic", recovered),
			log.String("path", c.Request.URL.Path),
			log.String("stack", string(debug.Stack())),
		)

		abortWithMessage(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", recovered), "Internal server error")
	})
}
