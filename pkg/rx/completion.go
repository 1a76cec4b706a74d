package rx

// Completion is the terminal outcome of a subscription: either a successful
// finish or a carried failure of type E. At most one Completion is ever
// delivered per subscription and no value follows it.
type Completion[E any] struct {
	failure  E
	isFailed bool
}

// Finished returns the successful terminal outcome.
func Finished[E any]() Completion[E] {
	return Completion[E]{}
}

// Failed returns a terminal outcome carrying the given failure.
func Failed[E any](failure E) Completion[E] {
	return Completion[E]{
		failure:  failure,
		isFailed: true,
	}
}

// IsFinished reports whether the subscription completed successfully.
func (c Completion[E]) IsFinished() bool {
	return !c.isFailed
}

// IsFailed reports whether the subscription terminated with a failure.
func (c Completion[E]) IsFailed() bool {
	return c.isFailed
}

// Failure returns the carried failure. It is the zero value of E unless
// IsFailed.
func (c Completion[E]) Failure() E {
	return c.failure
}
