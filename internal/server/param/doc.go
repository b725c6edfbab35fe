// Package param binds route arguments to data objects before a handler runs.
//
// A route declares its arguments (name, declared type, nullability and optional
// DataObjectParam options). The Binder asks each ArgumentResolver whether it
// supports an argument and applies the Binding it returns to the request
// attributes. DataObjectParamResolver loads the object whose ID is stored under
// the argument name and hides unpublished objects from non admin requests.
package param
