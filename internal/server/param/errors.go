package param

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectNotFound means no object of the class has the requested ID.
	ErrObjectNotFound = errors.New("data object not found")

	// ErrObjectUnpublished means the object exists but the request may not see it.
	ErrObjectUnpublished = errors.New("data object is not published")
)

// NotFoundError reports an argument that could not be bound, it maps to HTTP 404.
type NotFoundError struct {
	Param string
	Err   error
}

func (e *NotFoundError) Error() string {
	if errors.Is(e.Err, ErrObjectUnpublished) {
		return fmt.Sprintf("Data object for parameter %q is not published.", e.Param)
	}

	return fmt.Sprintf("Invalid data object ID given for parameter %q.", e.Param)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
