package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/contexts"
	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/tracing"
)

// AccessLog returns a middleware that logs failed requests.
// It logs: status code, method, path, route, principal, and errors.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()

		var errMsgs []string
		for _, e := range c.Errors {
			errMsgs = append(errMsgs, e.Error())
		}

		for _, e := range contexts.GetErrors(ctx) {
			errMsgs = append(errMsgs, e.Error())
		}

		status := c.Writer.Status()
		if status < 400 && len(errMsgs) == 0 {
			return
		}

		fields := []log.Field{
			log.Int("status", status),
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.Duration("latency", time.Since(start)),
			log.String("client_ip", c.ClientIP()),
		}

		if opName, ok := tracing.GetOperationName(ctx); ok {
			fields = append(fields, log.String("operation", opName))
		}

		if p, ok := authz.GetPrincipal(ctx); ok {
			fields = append(fields, log.String("principal", p.String()))
		}

		if len(errMsgs) > 0 {
			fields = append(fields, log.Strings("errors", errMsgs))
		}

		// Not found objects are expected traffic.
		if status < 500 {
			log.Warn(ctx, "[ACCESS]", fields...)
			return
		}

		log.Error(ctx, "[ACCESS]", fields...)
	}
}
