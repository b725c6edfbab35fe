package biz

import (
	"errors"
)

var (
	ErrClassMismatch = errors.New("data object class mismatch")
	ErrInternal      = errors.New("server internal error, please try again later")
)
