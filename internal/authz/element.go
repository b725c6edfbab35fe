package authz

import (
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/looplj/objecthub/internal/objects"
)

const (
	// PreviewQueryParam names the object an admin previews through the query string.
	PreviewQueryParam = "object_preview"
	// PreviewHeader names the object an admin previews through a request header.
	PreviewHeader = "X-Object-Preview"

	defaultAdminPathPrefix = "/admin/"
)

// IsElementRequestByAdmin reports whether an admin principal requested obj itself,
// either by naming it in the preview query or header, or through the admin path.
func IsElementRequestByAdmin(r *http.Request, obj objects.DataObject) bool {
	return isElementRequestByAdmin(r, obj, defaultAdminPathPrefix)
}

func isElementRequestByAdmin(r *http.Request, obj objects.DataObject, adminPrefix string) bool {
	if r == nil || obj == nil || !IsAdmin(r.Context()) {
		return false
	}

	id := strconv.Itoa(obj.GetID())

	if r.URL != nil && r.URL.Query().Get(PreviewQueryParam) == id {
		return true
	}

	if r.Header.Get(PreviewHeader) == id {
		return true
	}

	return r.URL != nil && adminPrefix != "" && strings.HasPrefix(r.URL.Path, adminPrefix)
}

// DefaultAdminChecker recognises admin element requests for the configured admin prefix.
type DefaultAdminChecker struct {
	AdminPathPrefix string
}

// NewDefaultAdminChecker mounts the admin prefix under basePath, the base path the routes are served from.
func NewDefaultAdminChecker(config Config, basePath string) *DefaultAdminChecker {
	prefix := config.AdminPathPrefix
	if prefix == "" {
		prefix = defaultAdminPathPrefix
	}

	prefix = path.Join("/", basePath, prefix)
	if prefix != "/" {
		prefix += "/"
	}

	return &DefaultAdminChecker{AdminPathPrefix: prefix}
}

func (c *DefaultAdminChecker) IsElementRequestByAdmin(r *http.Request, obj objects.DataObject) bool {
	return isElementRequestByAdmin(r, obj, c.AdminPathPrefix)
}
