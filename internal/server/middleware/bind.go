package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/server/param"
)

// BindArguments resolves the declared arguments before the handler runs.
// The request attributes are the route params overlaid on the string keys of the gin context.
// Bound objects, or nil for an empty nullable argument, are stored under the argument name.
func BindArguments(binder *param.Binder, args ...param.Argument) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := param.NewRequest(c.Request, requestAttributes(c))

		bindings, err := binder.Bind(c.Request.Context(), req, args...)
		if err != nil {
			if param.IsNotFound(err) {
				AbortWithError(c, http.StatusNotFound, err)
				return
			}

			abortWithMessage(c, http.StatusInternalServerError, err, "Failed to load data object")

			return
		}

		for _, binding := range bindings {
			c.Set(binding.Name, binding.Value)
		}

		c.Next()
	}
}

func requestAttributes(c *gin.Context) *param.Attributes {
	attrs := param.NewAttributes(nil)

	for k, v := range c.Keys {
		if name, ok := k.(string); ok {
			attrs.Set(name, v)
		}
	}

	for _, p := range c.Params {
		attrs.Set(p.Key, p.Value)
	}

	return attrs
}

// BoundValue returns the object bound to the argument name.
// It returns false when the argument was not bound, was bound to nil, or is not a T.
func BoundValue[T objects.DataObject](c *gin.Context, name string) (T, bool) {
	var zero T

	v, ok := c.Get(name)
	if !ok || v == nil {
		return zero, false
	}

	obj, ok := v.(T)
	if !ok {
		return zero, false
	}

	return obj, true
}
