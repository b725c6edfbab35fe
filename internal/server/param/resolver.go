package param

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/metrics"
	"github.com/looplj/objecthub/internal/objects"
)

// ArgumentResolver resolves handler arguments it supports.
// A resolver returning the zero Binding and no error did not apply.
type ArgumentResolver interface {
	Supports(arg Argument) bool
	Resolve(ctx context.Context, req *Request, arg Argument) (Binding, error)
}

// DataObjectParamResolver loads data objects by the ID found in the attributes.
type DataObjectParamResolver struct {
	registry *objects.Registry
	admin    AdminChecker
}

func NewDataObjectParamResolver(registry *objects.Registry, admin AdminChecker) *DataObjectParamResolver {
	return &DataObjectParamResolver{
		registry: registry,
		admin:    admin,
	}
}

// Supports reports whether the declared type is a data object class.
func (r *DataObjectParamResolver) Supports(arg Argument) bool {
	return objects.IsSubclass(arg.Type)
}

// Resolve binds the argument to the object whose ID is stored under the argument name.
//
// It returns a NotFoundError wrapping ErrObjectNotFound when no such object exists, or
// ErrObjectUnpublished when the object is unpublished, the request is not an admin request
// for it and the options do not allow unpublished objects.
func (r *DataObjectParamResolver) Resolve(ctx context.Context, req *Request, arg Argument) (binding Binding, err error) {
	opts := arg.Options
	if opts == nil {
		opts = legacyOptions(ctx, req.Attributes, r.registry)
	}

	class := arg.Type
	if opts != nil && opts.Class != nil {
		class = opts.Class
	}

	defer func() {
		metrics.RecordParamResolution(ctx, className(class), outcome(binding, err))
	}()

	if opts != nil && opts.unknownClass != "" {
		log.Debug(ctx, "skip argument with unknown class", log.String("param", arg.Name), log.String("class", opts.unknownClass))
		return Binding{}, nil
	}

	if !objects.IsSubclass(class) {
		return Binding{}, nil
	}

	value, ok := req.Attributes.Get(arg.Name)
	if !ok {
		return Binding{}, nil
	}

	if isFalsy(value) && arg.Nullable {
		return bindNull(arg.Name), nil
	}

	obj, err := r.load(ctx, class, value)
	if err != nil {
		return Binding{}, err
	}

	if obj == nil {
		return Binding{}, &NotFoundError{Param: arg.Name, Err: ErrObjectNotFound}
	}

	if !obj.IsPublished() && !r.isAdminRequest(req, obj) && (opts == nil || !opts.Unpublished) {
		return Binding{}, &NotFoundError{Param: arg.Name, Err: ErrObjectUnpublished}
	}

	return bindObject(arg.Name, obj), nil
}

// load returns nil without error when the value does not name an existing object.
func (r *DataObjectParamResolver) load(ctx context.Context, class reflect.Type, value any) (objects.DataObject, error) {
	if obj, ok := value.(objects.DataObject); ok {
		return obj, nil
	}

	id, err := cast.ToIntE(value)
	if err != nil {
		log.Debug(ctx, "invalid data object id", log.Any("value", value), log.Cause(err))
		return nil, nil
	}

	obj, err := r.registry.GetByID(ctx, class, id)
	if err != nil {
		if errors.Is(err, objects.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to load data object %d: %w", id, err)
	}

	return obj, nil
}

func (r *DataObjectParamResolver) isAdminRequest(req *Request, obj objects.DataObject) bool {
	if r.admin == nil || req.HTTP == nil {
		return false
	}

	return r.admin.IsElementRequestByAdmin(req.HTTP, obj)
}

func className(t reflect.Type) string {
	if t == nil {
		return ""
	}

	return t.String()
}

func outcome(binding Binding, err error) string {
	switch {
	case errors.Is(err, ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, ErrObjectUnpublished):
		return "unpublished"
	case err != nil:
		return "error"
	case !binding.Bound:
		return "skipped"
	case binding.Value == nil:
		return "null"
	default:
		return "bound"
	}
}
