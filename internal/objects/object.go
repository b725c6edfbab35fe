package objects

import (
	"reflect"
	"time"
)

// DataObject is the base type of every loadable content class.
// Concrete classes are pointers to structs embedding Base.
type DataObject interface {
	GetID() int
	GetClass() string
	IsPublished() bool
}

// DataObjectType is the reflect type of the DataObject interface itself.
var DataObjectType = reflect.TypeFor[DataObject]()

// IsSubclass reports whether t is a strict subtype of DataObject.
// The DataObject interface itself is not a subclass of itself.
func IsSubclass(t reflect.Type) bool {
	if t == nil || t == DataObjectType {
		return false
	}

	return t.Implements(DataObjectType)
}

// Base holds the identity and publication state shared by every class.
type Base struct {
	ID        int       `json:"id" yaml:"id"`
	Class     string    `json:"class" yaml:"class"`
	Key       string    `json:"key" yaml:"key"`
	Path      string    `json:"path" yaml:"path"`
	Published bool      `json:"published" yaml:"published"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

func (b *Base) GetID() int {
	return b.ID
}

func (b *Base) GetClass() string {
	return b.Class
}

func (b *Base) IsPublished() bool {
	return b.Published
}

// FullPath returns the path joined with the key, like a file system path.
func (b *Base) FullPath() string {
	if b.Path == "" || b.Path == "/" {
		return "/" + b.Key
	}

	return b.Path + "/" + b.Key
}
