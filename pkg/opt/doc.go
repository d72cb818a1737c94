// Package opt provides two generic algebraic containers: Option[T] for a
// value that may be absent, and Result[T, E] for an operation that either
// produced a success value or an error value. Both are immutable value
// types constructed only through their factory functions, so application
// code can make absence and failure visible in signatures instead of
// relying on nil sentinels or panics.
//
// Highlights:
// - Some/None/Maybe: construct Option[T]
// - Ok/Err: construct Result[T, E]; r.Ok()/r.Err() convert back to Option
// - Map/MapOr/MapOrElse/FlatMap: transform Option values
// - MapOk/MapErr/AndThen: transform Result values, short-circuiting on Err
// - Unwrap/UnwrapOr/UnwrapOrElse/Expect: extract payloads
// - Equal/Compare/Hash families: value semantics for both containers
//
// Type-changing combinators are package-level functions because Go methods
// cannot introduce new type parameters; same-type operations are methods.
package opt
