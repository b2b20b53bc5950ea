// Package proptest provides rapid generators for the container types,
// for use in property-based tests.
package proptest

import (
	"github.com/corelibs/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		return functional.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[functional.Option[T]] {
	return rapid.Just(functional.None[T]())
}

// ResultGen generates Result[T, E] values.
func ResultGen[T, E any](valueGen *rapid.Generator[T], errGen *rapid.Generator[E]) *rapid.Generator[functional.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T, E] {
		if rapid.Bool().Draw(t, "isOk") {
			return functional.Ok[T, E](valueGen.Draw(t, "value"))
		}
		return functional.Err[T](errGen.Draw(t, "error"))
	})
}

// OkGen generates Ok[T, E] values only.
func OkGen[T, E any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T, E] {
		return functional.Ok[T, E](valueGen.Draw(t, "value"))
	})
}

// ErrGen generates Err[T, E] values only.
func ErrGen[T, E any](errGen *rapid.Generator[E]) *rapid.Generator[functional.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T, E] {
		return functional.Err[T](errGen.Draw(t, "error"))
	})
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// LeftGen generates Left[L, R] values only.
func LeftGen[L, R any](leftGen *rapid.Generator[L]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// RightGen generates Right[L, R] values only.
func RightGen[L, R any](rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		return functional.Right[L](rightGen.Draw(t, "right"))
	})
}

// ValidatedGen generates Validated[E, A] values. Invalid draws carry
// between one and three errors.
func ValidatedGen[E, A any](errGen *rapid.Generator[E], valueGen *rapid.Generator[A]) *rapid.Generator[functional.Validated[E, A]] {
	return rapid.Custom(func(t *rapid.T) functional.Validated[E, A] {
		if rapid.Bool().Draw(t, "isValid") {
			return functional.Valid[E](valueGen.Draw(t, "value"))
		}
		errs := rapid.SliceOfN(errGen, 1, 3).Draw(t, "errors")
		return functional.Invalid[E, A](errs...)
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(firstGen.Draw(t, "first"), secondGen.Draw(t, "second"))
	})
}
