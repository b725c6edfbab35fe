package authz

import (
	"context"
	"fmt"
)

// PrincipalType defines authorization principal types.
type PrincipalType int

const (
	// PrincipalTypeUnknown unknown principal type.
	PrincipalTypeUnknown PrincipalType = iota
	// PrincipalTypeSystem system principal (fixtures, internal operations).
	PrincipalTypeSystem
	// PrincipalTypeUser user principal authenticated by a token.
	PrincipalTypeUser
)

// String returns string representation of PrincipalType.
func (p PrincipalType) String() string {
	switch p {
	case PrincipalTypeSystem:
		return "system"
	case PrincipalTypeUser:
		return "user"
	default:
		return "unknown"
	}
}

// Principal represents authorization principal.
// Each request can only have one Principal, guaranteed by WithPrincipal's set-once semantics.
type Principal struct {
	Type   PrincipalType
	UserID *int
	Admin  bool
}

// IsSystem checks if it is a system principal.
func (p Principal) IsSystem() bool {
	return p.Type == PrincipalTypeSystem
}

// IsUser checks if it is a user principal.
func (p Principal) IsUser() bool {
	return p.Type == PrincipalTypeUser
}

// IsAdmin reports whether the principal may see unpublished objects.
// The system principal is always an admin.
func (p Principal) IsAdmin() bool {
	return p.IsSystem() || (p.IsUser() && p.Admin)
}

// String returns string representation of Principal (for audit logs).
func (p Principal) String() string {
	switch p.Type {
	case PrincipalTypeSystem:
		return "system"
	case PrincipalTypeUser:
		role := "user"
		if p.Admin {
			role = "admin"
		}

		if p.UserID != nil {
			return fmt.Sprintf("%s:%d", role, *p.UserID)
		}

		return role + ":unknown"
	default:
		return "unknown"
	}
}

// principalKey is an unexported key type to prevent external forgery.
type principalKey struct{}

// WithPrincipal sets Principal, returns error if already exists.
func WithPrincipal(ctx context.Context, p Principal) (context.Context, error) {
	if existing, ok := GetPrincipal(ctx); ok {
		if !principalEqual(existing, p) {
			return ctx, fmt.Errorf("authz: principal conflict: existing=%s, new=%s", existing.String(), p.String())
		}

		return ctx, nil // Same principal, idempotent
	}

	return context.WithValue(ctx, principalKey{}, p), nil
}

func principalEqual(a, b Principal) bool {
	if a.Type != b.Type || a.Admin != b.Admin {
		return false
	}

	if a.UserID == nil || b.UserID == nil {
		return a.UserID == nil && b.UserID == nil
	}

	return *a.UserID == *b.UserID
}

// GetPrincipal reads Principal.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	if ctx == nil {
		return Principal{}, false
	}

	p, ok := ctx.Value(principalKey{}).(Principal)

	return p, ok
}

// IsAdmin reports whether the context carries an admin principal.
func IsAdmin(ctx context.Context) bool {
	p, ok := GetPrincipal(ctx)
	return ok && p.IsAdmin()
}

// NewSystemContext creates context with System principal (for fixtures and background tasks).
func NewSystemContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, principalKey{}, Principal{Type: PrincipalTypeSystem})
}

// NewUserContext creates context with User principal.
func NewUserContext(ctx context.Context, userID int, admin bool) context.Context {
	return context.WithValue(ctx, principalKey{}, Principal{
		Type:   PrincipalTypeUser,
		UserID: &userID,
		Admin:  admin,
	})
}
