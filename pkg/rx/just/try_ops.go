package just

import "github.com/ib-77/rx3/pkg/rx/fallible"

// TryMap runs f now and captures its error, if any, into the resulting
// producer's eventual Failed completion. The error never escapes this call.
func TryMap[In, Out any](j Just[In], f func(in In) (Out, error)) fallible.Result[Out, error] {
	out, err := f(j.Value())
	if err != nil {
		return fallible.Fail[Out, error](err)
	}
	return fallible.Of[Out, error](out)
}

// TryReduce runs f(initial, value) now, capturing its error.
func TryReduce[T, A any](j Just[T], initial A, f func(acc A, v T) (A, error)) fallible.Result[A, error] {
	acc, err := f(initial, j.Value())
	if err != nil {
		return fallible.Fail[A, error](err)
	}
	return fallible.Of[A, error](acc)
}

// TryScan over a single element is a single fallible application of f.
func TryScan[T, A any](j Just[T], initial A, f func(acc A, v T) (A, error)) fallible.Result[A, error] {
	return TryReduce(j, initial, f)
}

func TryContainsWhere[T any](j Just[T], pred func(v T) (bool, error)) fallible.Result[bool, error] {
	ok, err := pred(j.Value())
	if err != nil {
		return fallible.Fail[bool, error](err)
	}
	return fallible.Of[bool, error](ok)
}

func TryAllSatisfy[T any](j Just[T], pred func(v T) (bool, error)) fallible.Result[bool, error] {
	return TryContainsWhere(j, pred)
}
