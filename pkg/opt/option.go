package opt

import (
	"cmp"
	"fmt"
)

// Option holds either a value of type T or nothing. The zero value is None.
//
// Presence is a property of the container, not of the payload: Some may wrap
// a nil pointer or zero value and still report IsSome.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a value in a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Maybe returns None if v is a nil marker (see IsNil), otherwise Some(v).
func Maybe[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Expect returns the value or panics with an *UnwrapError carrying msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&UnwrapError{Msg: msg})
	}
	return o.value
}

// Unwrap returns the value or panics with an *UnwrapError ("value is
// absent"). Use UnwrapOr or UnwrapOrElse when absence is expected.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&UnwrapError{Msg: absentMsg})
	}
	return o.value
}

// Value is equivalent to Unwrap.
func (o Option[T]) Value() T {
	return o.Unwrap()
}

// UnwrapOr returns the value if present, otherwise def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the value if present, otherwise the result of fn.
// fn is invoked only when the Option is empty.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Filter returns the Option unchanged when it holds a value accepted by
// pred, otherwise None. pred is not invoked on an empty Option.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// String renders "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to the value of a present Option and wraps the outcome;
// an empty Option stays empty and fn is not invoked.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOr returns fn applied to the value if present, otherwise def.
func MapOr[T, U any](o Option[T], fn func(T) U, def U) U {
	if o.some {
		return fn(o.value)
	}
	return def
}

// MapOrElse returns fn applied to the value if present, otherwise the
// result of def.
func MapOrElse[T, U any](o Option[T], fn func(T) U, def func() U) U {
	if o.some {
		return fn(o.value)
	}
	return def()
}

// FlatMap applies fn, which itself returns an Option, to the value of a
// present Option. An empty Option short-circuits: fn is not invoked and
// None is returned, so a None anywhere in a chain makes the whole chain
// None.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// Get looks up key in a map-valued Option. It returns None when the Option
// is empty, when the key is missing, or when the stored value is a nil
// marker; otherwise Some of the stored value.
func Get[M ~map[K]V, K comparable, V any](o Option[M], key K) Option[V] {
	if !o.some {
		return None[V]()
	}
	v, found := o.value[key]
	if !found {
		return None[V]()
	}
	return Maybe(v)
}

// GetOr is Get with a fallback: wherever Get would fall through to None
// (empty Option, missing key, nil-marker value), GetOr resolves def through
// Maybe instead.
func GetOr[M ~map[K]V, K comparable, V any](o Option[M], key K, def V) Option[V] {
	if !o.some {
		return Maybe(def)
	}
	v, found := o.value[key]
	if !found || IsNil(v) {
		return Maybe(def)
	}
	return Some(v)
}

// Equal reports whether two Options are both empty, or both present with
// equal values.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

// EqualFunc is Equal with a caller-supplied value comparison, usable across
// element types and for non-comparable payloads. eq is invoked only when
// both Options are present.
func EqualFunc[T, U any](a Option[T], b Option[U], eq func(T, U) bool) bool {
	if a.some != b.some {
		return false
	}
	if !a.some {
		return true
	}
	return eq(a.value, b.value)
}

// Compare orders two Options: None sorts before any present value, two
// present values compare by payload, two Nones are equal. The result is
// -1, 0 or +1 in the manner of cmp.Compare.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	switch {
	case a.some && b.some:
		return cmp.Compare(a.value, b.value)
	case a.some:
		return 1
	case b.some:
		return -1
	default:
		return 0
	}
}

// CompareFunc is Compare with a caller-supplied payload comparator, for
// element types outside cmp.Ordered. compare is invoked only when both
// Options are present.
func CompareFunc[T, U any](a Option[T], b Option[U], compare func(T, U) int) int {
	switch {
	case a.some && b.some:
		return compare(a.value, b.value)
	case a.some:
		return 1
	case b.some:
		return -1
	default:
		return 0
	}
}
