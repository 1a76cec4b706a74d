package fallible

import (
	"github.com/google/uuid"

	"github.com/ib-77/rx3/pkg/rx"
)

// Result is a producer emitting exactly one value or terminating with one
// failure of type E.
type Result[T, E any] struct {
	value    T
	failure  E
	isFailed bool
}

func Of[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

func Fail[T, E any](failure E) Result[T, E] {
	return Result[T, E]{
		failure:  failure,
		isFailed: true,
	}
}

// IsFailed reports whether subscribers observe a Failed completion instead of
// a value.
func (r Result[T, E]) IsFailed() bool {
	return r.isFailed
}

// Value returns the held value; the zero value of T when IsFailed.
func (r Result[T, E]) Value() T {
	return r.value
}

// Failure returns the held failure; the zero value of E unless IsFailed.
func (r Result[T, E]) Failure() E {
	return r.failure
}

// Subscribe attaches the consumer. A failed Result completes right away with
// a Failed completion and an inert subscription; a value-bearing one waits
// for positive demand.
func (r Result[T, E]) Subscribe(c rx.Consumer[T, E]) {
	if r.isFailed {
		c.OnSubscribe(rx.Inert())
		c.OnCompletion(rx.Failed(r.failure))
		return
	}

	c.OnSubscribe(&subscription[T, E]{
		id:       uuid.New(),
		value:    r.value,
		consumer: c,
	})
}

type subscription[T, E any] struct {
	id       uuid.UUID
	value    T
	consumer rx.Consumer[T, E]
}

func (s *subscription[T, E]) ID() uuid.UUID {
	return s.id
}

func (s *subscription[T, E]) Request(d rx.Demand) {
	if s.consumer == nil || !d.Positive() {
		return
	}

	c := s.consumer
	s.consumer = nil

	c.OnValue(s.value)
	c.OnCompletion(rx.Finished[E]())
}

func (s *subscription[T, E]) Cancel() {
	s.consumer = nil
}
