package opt

import (
	"cmp"
	"fmt"
)

// Result holds either a success value of type T or an error value of type
// E, discriminated by which factory built it. The error side is a payload
// like any other; E does not have to implement error.
//
// The zero value reports IsErr with a zero E. Prefer the Ok/Err factories.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success value in a Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err wraps an error value in a Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Ok converts the success side to an Option: Some of the success value
// when the Result is ok, otherwise None.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err converts the error side to an Option: Some of the error value when
// the Result is err, otherwise None.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Unwrap returns the success value or panics with an *UnwrapError carrying
// the string form of the error value.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Msg: fmt.Sprint(r.err)})
	}
	return r.value
}

// UnwrapOr returns the success value if ok, otherwise def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value if ok, otherwise fn applied to
// the error value. fn is invoked only on an err Result.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Expect returns the success value or panics with an *UnwrapError
// carrying msg.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapError{Msg: msg})
	}
	return r.value
}

// UnwrapErr returns the error value or panics with an *UnwrapError carrying
// the string form of the success value.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&UnwrapError{Msg: fmt.Sprint(r.value)})
	}
	return r.err
}

// ExpectErr returns the error value or panics with an *UnwrapError
// carrying msg.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(&UnwrapError{Msg: msg})
	}
	return r.err
}

// String renders "Ok(v)" or "Err(e)".
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MapOk applies fn to the success value of an ok Result; an err Result
// passes through with its error value intact and fn is not invoked.
func MapOk[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies fn to the error value of an err Result; an ok Result
// passes through with its success value intact and fn is not invoked.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// AndThen applies fn, which itself returns a Result, to the success value
// of an ok Result. An err Result short-circuits: fn is not invoked and the
// error passes through, so a chain stops at its first error.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// EqualResults reports whether two Results hold the same variant with equal
// payloads.
func EqualResults[T, E comparable](a, b Result[T, E]) bool {
	return a == b
}

// EqualResultsFunc is EqualResults with caller-supplied payload
// comparisons. Only the comparison matching the shared variant is invoked.
func EqualResultsFunc[T, E, U, F any](a Result[T, E], b Result[U, F],
	eqOk func(T, U) bool, eqErr func(E, F) bool) bool {

	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eqOk(a.value, b.value)
	}
	return eqErr(a.err, b.err)
}

// CompareResults orders two Results: an err sorts before any ok (note the
// opposite convention from Option, where None sorts first), and matching
// variants compare by their populated payloads.
func CompareResults[T, E cmp.Ordered](a, b Result[T, E]) int {
	switch {
	case a.ok && b.ok:
		return cmp.Compare(a.value, b.value)
	case !a.ok && !b.ok:
		return cmp.Compare(a.err, b.err)
	case a.ok:
		return 1
	default:
		return -1
	}
}

// CompareResultsFunc is CompareResults with caller-supplied payload
// comparators. Only the comparator matching the shared variant is invoked.
func CompareResultsFunc[T, E, U, F any](a Result[T, E], b Result[U, F],
	compareOk func(T, U) int, compareErr func(E, F) int) int {

	switch {
	case a.ok && b.ok:
		return compareOk(a.value, b.value)
	case !a.ok && !b.ok:
		return compareErr(a.err, b.err)
	case a.ok:
		return 1
	default:
		return -1
	}
}
