package param

import (
	"reflect"

	"github.com/looplj/objecthub/internal/objects"
)

// Argument describes one handler argument.
type Argument struct {
	Name     string
	Type     reflect.Type
	Nullable bool
	Options  *DataObjectParam
}

// Arg declares an argument of type T.
func Arg[T any](name string) Argument {
	return Argument{
		Name: name,
		Type: reflect.TypeFor[T](),
	}
}

// AsNullable marks the argument as accepting an empty value.
func (a Argument) AsNullable() Argument {
	a.Nullable = true
	return a
}

// WithOptions attaches per argument options.
func (a Argument) WithOptions(opts *DataObjectParam) Argument {
	a.Options = opts
	return a
}

// DataObjectParam configures how a data object argument is resolved.
type DataObjectParam struct {
	// Class overrides the declared argument type as the class to load.
	Class reflect.Type

	// Unpublished allows unpublished objects to be bound for any request.
	Unpublished bool

	// Extra carries free form options, e.g. those of a legacy converter.
	Extra map[string]any

	// unknownClass is set when a legacy converter names a class that is not registered.
	unknownClass string
}

// ForClass returns options loading objects of class T.
func ForClass[T objects.DataObject]() *DataObjectParam {
	return &DataObjectParam{Class: reflect.TypeFor[T]()}
}

// AllowUnpublished returns a copy of the options allowing unpublished objects.
func (p *DataObjectParam) AllowUnpublished() *DataObjectParam {
	var next DataObjectParam
	if p != nil {
		next = *p
	}

	next.Unpublished = true

	return &next
}
