package param

import (
	"reflect"
)

// isFalsy reports whether a raw attribute value counts as empty.
// Zero numbers and "0" are empty too, so ID 0 can never be loaded for a nullable argument.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}

	switch x := v.(type) {
	case bool:
		return !x
	case string:
		return x == "" || x == "0"
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
