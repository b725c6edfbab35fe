package param

import (
	"maps"
	"slices"
)

// Attributes is the per request attribute bag, it is not safe for concurrent use.
type Attributes struct {
	values map[string]any
}

func NewAttributes(values map[string]any) *Attributes {
	attrs := &Attributes{values: make(map[string]any, len(values))}
	maps.Copy(attrs.values, values)

	return attrs
}

func (a *Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

func (a *Attributes) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

func (a *Attributes) Set(key string, value any) {
	a.values[key] = value
}

// Keys returns the attribute names in sorted order.
func (a *Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a.values))
}
