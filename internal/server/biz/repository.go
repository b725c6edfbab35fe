package biz

import (
	"context"

	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/store"
)

// ClassRepository loads objects of one class through the object service.
type ClassRepository[T objects.DataObject] struct {
	class   string
	service *ObjectService
	decode  func(*store.Record) (T, error)
}

func NewClassRepository[T objects.DataObject](class string, service *ObjectService, decode func(*store.Record) (T, error)) *ClassRepository[T] {
	return &ClassRepository[T]{
		class:   class,
		service: service,
		decode:  decode,
	}
}

func (r *ClassRepository[T]) Get(ctx context.Context, id int) (T, error) {
	rec, err := r.service.GetByID(ctx, r.class, id)
	if err != nil {
		var zero T
		return zero, err
	}

	return r.decode(rec)
}

// GetByID implements objects.Repository.
func (r *ClassRepository[T]) GetByID(ctx context.Context, id int) (objects.DataObject, error) {
	obj, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return obj, nil
}

// RegisterClasses registers the repositories of the built-in classes.
func RegisterClasses(registry *objects.Registry, service *ObjectService) error {
	if err := objects.Register[*objects.Article](registry, objects.ClassArticle,
		NewClassRepository(objects.ClassArticle, service, DecodeArticle)); err != nil {
		return err
	}

	if err := objects.Register[*objects.Product](registry, objects.ClassProduct,
		NewClassRepository(objects.ClassProduct, service, DecodeProduct)); err != nil {
		return err
	}

	return objects.Register[*objects.Folder](registry, objects.ClassFolder,
		NewClassRepository(objects.ClassFolder, service, DecodeFolder))
}
