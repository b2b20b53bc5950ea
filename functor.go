// Package functional provides composable container types for Go.
// It consolidates Option, Result, Either, and Validated with a common
// Functor interface for consistent mapping operations. Every container is
// an immutable two-variant value type: transformations on the short-circuit
// variant are no-ops that never invoke the supplied function, so chains of
// Map/FlatMap calls need no branching at the call site.
package functional

// Functor represents types that can be mapped over.
// Option, Result, and Either implement this interface.
type Functor[A any] interface {
	// Map applies a function to the wrapped value if present.
	Map(fn func(A) A) Functor[A]
}

// OptionToResult converts Option[T] to Result[T, E] with the provided
// failure value for None.
func OptionToResult[T, E any](opt Option[T], err E) Result[T, E] {
	if opt.IsSome() {
		return Ok[T, E](opt.Unwrap())
	}
	return Err[T](err)
}

// ResultToOption converts Result[T, E] to Option[T], discarding the failure.
func ResultToOption[T, E any](res Result[T, E]) Option[T] {
	if res.IsOk() {
		return Some(res.Unwrap())
	}
	return None[T]()
}

// IdentityFunc is an identity function for functor law testing.
func IdentityFunc[T any](v T) T {
	return v
}

// ComposeFunc composes two functions for functor law testing.
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
