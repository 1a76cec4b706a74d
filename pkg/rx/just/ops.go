package just

import (
	"github.com/ib-77/rx3/pkg/rx"
	"github.com/ib-77/rx3/pkg/rx/fallible"
	"github.com/ib-77/rx3/pkg/rx/option"
	"github.com/ib-77/rx3/pkg/rx/void"
)

// Map returns a producer holding f(value). f runs now, at composition time.
func Map[In, Out any](j Just[In], f func(in In) Out) Just[Out] {
	return Of(f(j.Value()))
}

// Filter keeps the value iff pred holds for it.
func Filter[T any](j Just[T], pred func(v T) bool) option.Option[T] {
	if pred(j.Value()) {
		return option.Some(j.Value())
	}
	return option.None[T]()
}

// CompactMap keeps f(value) iff f reports a usable result.
func CompactMap[In, Out any](j Just[In], f func(in In) (Out, bool)) option.Option[Out] {
	if out, ok := f(j.Value()); ok {
		return option.Some(out)
	}
	return option.None[Out]()
}

// First is an identity: the single value is trivially the first.
func First[T any](j Just[T]) Just[T] {
	return j
}

// Last is an identity: the single value is trivially the last.
func Last[T any](j Just[T]) Just[T] {
	return j
}

// Min is an identity: a one-element source has one extremum.
func Min[T any](j Just[T]) Just[T] {
	return j
}

// Max is an identity: a one-element source has one extremum.
func Max[T any](j Just[T]) Just[T] {
	return j
}

func FirstWhere[T any](j Just[T], pred func(v T) bool) option.Option[T] {
	return Filter(j, pred)
}

func LastWhere[T any](j Just[T], pred func(v T) bool) option.Option[T] {
	return Filter(j, pred)
}

// DropWhile drops the value iff pred holds for it.
func DropWhile[T any](j Just[T], pred func(v T) bool) option.Option[T] {
	if pred(j.Value()) {
		return option.None[T]()
	}
	return option.Some(j.Value())
}

// DropFirst drops the first n values: the value survives only for n == 0.
// Negative n panics.
func DropFirst[T any](j Just[T], n int) option.Option[T] {
	if n < 0 {
		panic("just: DropFirst requires n >= 0")
	}
	if n == 0 {
		return option.Some(j.Value())
	}
	return option.None[T]()
}

// Prefix keeps at most the first n values. Negative n panics.
func Prefix[T any](j Just[T], n int) option.Option[T] {
	if n < 0 {
		panic("just: Prefix requires n >= 0")
	}
	if n == 0 {
		return option.None[T]()
	}
	return option.Some(j.Value())
}

// OutputAt keeps the value at the given index; the single value lives at
// index 0. Negative index panics.
func OutputAt[T any](j Just[T], index int) option.Option[T] {
	if index < 0 {
		panic("just: OutputAt requires index >= 0")
	}
	if index == 0 {
		return option.Some(j.Value())
	}
	return option.None[T]()
}

// OutputIn keeps the value iff the half-open index range [lower, upper)
// starts at 0. The empty range [0, 0) still produces the value; this matches
// the reference single-value publisher and is covered by its own test.
// Negative lower or upper < lower panics.
func OutputIn[T any](j Just[T], lower, upper int) option.Option[T] {
	if lower < 0 {
		panic("just: OutputIn requires lower >= 0")
	}
	if upper < lower {
		panic("just: OutputIn requires upper >= lower")
	}
	if lower == 0 {
		return option.Some(j.Value())
	}
	return option.None[T]()
}

// Reduce returns a producer holding f(initial, value), computed now.
func Reduce[T, A any](j Just[T], initial A, f func(acc A, v T) A) Just[A] {
	return Of(f(initial, j.Value()))
}

// Scan over a single element is a single application of f.
func Scan[T, A any](j Just[T], initial A, f func(acc A, v T) A) Just[A] {
	return Reduce(j, initial, f)
}

// Count always completes with 1, regardless of the held value.
func Count[T any](j Just[T]) Just[int] {
	return Of(1)
}

func Contains[T comparable](j Just[T], v T) Just[bool] {
	return Of(j.Value() == v)
}

func ContainsWhere[T any](j Just[T], pred func(v T) bool) Just[bool] {
	return Of(pred(j.Value()))
}

func AllSatisfy[T any](j Just[T], pred func(v T) bool) Just[bool] {
	return Of(pred(j.Value()))
}

// RemoveDuplicates is an identity: a one-element source holds no pair to
// compare.
func RemoveDuplicates[T any](j Just[T]) Just[T] {
	return j
}

// RemoveDuplicatesBy is an identity; the comparator is never consulted.
func RemoveDuplicatesBy[T any](j Just[T], _ func(a, b T) bool) Just[T] {
	return j
}

// Retry is an identity: the source cannot fail, so there is nothing to retry.
func Retry[T any](j Just[T], _ int) Just[T] {
	return j
}

// ReplaceEmpty is an identity: the source is never empty.
func ReplaceEmpty[T any](j Just[T], _ T) Just[T] {
	return j
}

// ReplaceError is an identity; the handler is never invoked.
func ReplaceError[T any](j Just[T], _ func(failure rx.Never) T) Just[T] {
	return j
}

// SetFailureType retags the producer with failure type E. The result never
// actually fails.
func SetFailureType[T, E any](j Just[T]) fallible.Result[T, E] {
	return fallible.Of[T, E](j.Value())
}

// MapError retags the failure type; f is never invoked since no Never value
// exists to map.
func MapError[T, E any](j Just[T], _ func(failure rx.Never) E) fallible.Result[T, E] {
	return fallible.Of[T, E](j.Value())
}

// IgnoreOutput drops the value, leaving a producer that only completes.
func IgnoreOutput[T any](j Just[T]) void.Empty[T, rx.Never] {
	return void.New[T, rx.Never]()
}
