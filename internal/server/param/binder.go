package param

import (
	"context"
)

// Binder runs the argument resolvers for the declared arguments of a route.
type Binder struct {
	resolvers []ArgumentResolver
}

func NewBinder(resolvers ...ArgumentResolver) *Binder {
	return &Binder{resolvers: resolvers}
}

// Bind resolves each argument with the first supporting resolver that binds it and applies
// the bindings to the request attributes. It stops at the first error.
func (b *Binder) Bind(ctx context.Context, req *Request, args ...Argument) ([]Binding, error) {
	var bindings []Binding

	for _, arg := range args {
		for _, resolver := range b.resolvers {
			if !resolver.Supports(arg) {
				continue
			}

			binding, err := resolver.Resolve(ctx, req, arg)
			if err != nil {
				return nil, err
			}

			if !binding.Bound {
				continue
			}

			binding.Apply(req.Attributes)
			bindings = append(bindings, binding)

			break
		}
	}

	return bindings, nil
}
