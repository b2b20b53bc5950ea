package functional

import "iter"

// Result represents the outcome of an operation that may fail.
// It contains either a success value of type T or a failure value of type E.
// E is not constrained to the error interface: a failure may carry any
// shape the caller's domain needs, from a plain string to a structured
// error record.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, ok: false}
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics on failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err")
	}
	return r.value
}

// UnwrapErr returns the failure value or panics on success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default, discarding the failure.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from the
// failure value.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// OrElse returns the Result unchanged if successful, otherwise the Result
// produced by applying fn to the failure value. fn is not invoked on Ok.
// The recovery may produce a new success, a different failure, or pass the
// original failure through.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Map applies a function to the success value.
func (r Result[T, E]) Map(fn func(T) T) Functor[T] {
	if r.ok {
		return Ok[T, E](fn(r.value))
	}
	return Err[T](r.err)
}

// MapResult applies a transformation function to the success value. The
// failure value passes through unchanged and fn is not invoked on Err.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapResultErr applies a transformation function to the failure value.
func MapResultErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// FlatMapResult applies a function that returns a Result, flattening one
// level of nesting. fn is not invoked on Err; the failure type stays fixed
// across the chain.
func FlatMapResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// Match executes one of two functions based on Result state.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// FoldResult executes one of two functions and returns the result.
func FoldResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// ResultHandlers holds the two handlers a MatchResult reducer dispatches to.
// Both handlers must return the same type.
type ResultHandlers[T, E, U any] struct {
	OnOk  func(T) U
	OnErr func(E) U
}

// MatchResult builds a reducer from a pair of handlers. The returned
// function collapses a Result into a plain value, invoking exactly one
// handler per application: OnOk with the success value, or OnErr with the
// failure value.
func MatchResult[T, E, U any](handlers ResultHandlers[T, E, U]) func(Result[T, E]) U {
	return func(r Result[T, E]) U {
		if r.ok {
			return handlers.OnOk(r.value)
		}
		return handlers.OnErr(r.err)
	}
}

// ToOption converts Result to Option, discarding the failure value.
func (r Result[T, E]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// All returns a Go 1.23+ iterator over the Result (0 or 1 element).
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// Collect returns the Result value as a slice (empty if failed).
func (r Result[T, E]) Collect() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

// ZipResult pairs two Results that share a failure type. The result is Ok
// only when both inputs are Ok; otherwise the first failure wins.
func ZipResult[A, B, E any](a Result[A, E], b Result[B, E]) Result[Pair[A, B], E] {
	if !a.ok {
		return Err[Pair[A, B]](a.err)
	}
	if !b.ok {
		return Err[Pair[A, B]](b.err)
	}
	return Ok[Pair[A, B], E](NewPair(a.value, b.value))
}

// Try wraps a function that may return an error.
func Try[T any](fn func() (T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// TryFunc wraps a function call with error handling.
func TryFunc[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}
