package param

import (
	"net/http"

	"github.com/looplj/objecthub/internal/objects"
)

//go:generate mockgen -source=admin.go -destination=mock_admin_test.go -package=param

// AdminChecker recognises requests made by an administrator for a specific object.
type AdminChecker interface {
	IsElementRequestByAdmin(r *http.Request, obj objects.DataObject) bool
}

type AdminCheckerFunc func(r *http.Request, obj objects.DataObject) bool

func (f AdminCheckerFunc) IsElementRequestByAdmin(r *http.Request, obj objects.DataObject) bool {
	return f(r, obj)
}
