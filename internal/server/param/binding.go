package param

import (
	"github.com/looplj/objecthub/internal/objects"
)

// Binding is the outcome of resolving one argument.
// The zero value means the resolver did not apply and nothing is written back.
type Binding struct {
	Name  string
	Value objects.DataObject
	Bound bool
}

func bindObject(name string, obj objects.DataObject) Binding {
	return Binding{Name: name, Value: obj, Bound: true}
}

func bindNull(name string) Binding {
	return Binding{Name: name, Bound: true}
}

// Values returns the resolved objects, at most one.
func (b Binding) Values() []objects.DataObject {
	if !b.Bound || b.Value == nil {
		return nil
	}

	return []objects.DataObject{b.Value}
}

// Apply writes the binding back to the attributes.
func (b Binding) Apply(attrs *Attributes) {
	if !b.Bound {
		return
	}

	if b.Value == nil {
		attrs.Set(b.Name, nil)
		return
	}

	attrs.Set(b.Name, b.Value)
}
