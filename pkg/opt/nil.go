package opt

import "reflect"

// IsNil reports whether v is the nil marker of its dynamic type: an untyped
// nil, or a nil pointer, interface, map, slice, function or channel. Values
// of non-nillable kinds are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
