package objects

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrNotFound is returned by repositories when no object of the class has the ID.
var ErrNotFound = errors.New("data object not found")

// Repository loads objects of one class by ID.
type Repository interface {
	GetByID(ctx context.Context, id int) (DataObject, error)
}

// RepositoryFunc adapts a function to the Repository interface.
type RepositoryFunc func(ctx context.Context, id int) (DataObject, error)

func (f RepositoryFunc) GetByID(ctx context.Context, id int) (DataObject, error) {
	return f(ctx, id)
}

// Registry maps class types to the repositories that load them.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]Repository
	byName map[string]reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]Repository),
		byName: make(map[string]reflect.Type),
	}
}

// Register binds a repository to a class type and name.
func (r *Registry) Register(t reflect.Type, name string, repo Repository) error {
	if !IsSubclass(t) {
		return fmt.Errorf("type %v is not a data object class", t)
	}

	if repo == nil {
		return fmt.Errorf("nil repository for class %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("class %s already registered", name)
	}

	r.byType[t] = repo
	r.byName[name] = t

	return nil
}

// Register binds a repository to the class T.
func Register[T DataObject](r *Registry, name string, repo Repository) error {
	return r.Register(reflect.TypeFor[T](), name, repo)
}

// Lookup returns the repository registered for the class type.
func (r *Registry) Lookup(t reflect.Type) (Repository, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, ok := r.byType[t]

	return repo, ok
}

// TypeByName resolves a registered class name to its type.
func (r *Registry) TypeByName(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]

	return t, ok
}

// GetByID loads an object of class t. It returns ErrNotFound when the class has no
// repository or the repository has no such object.
func (r *Registry) GetByID(ctx context.Context, t reflect.Type, id int) (DataObject, error) {
	repo, ok := r.Lookup(t)
	if !ok {
		return nil, fmt.Errorf("no repository for %v: %w", t, ErrNotFound)
	}

	return repo.GetByID(ctx, id)
}
