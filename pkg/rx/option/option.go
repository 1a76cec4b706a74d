package option

import (
	"github.com/google/uuid"

	"github.com/ib-77/rx3/pkg/rx"
)

// Option is a producer emitting zero or one value before finishing. Equality
// follows the held value and presence flag only.
type Option[T any] struct {
	value    T
	hasValue bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, hasValue: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue reports whether a value will be emitted.
func (o Option[T]) HasValue() bool {
	return o.hasValue
}

// Value returns the held value; the zero value of T when !HasValue.
func (o Option[T]) Value() T {
	return o.value
}

// Subscribe attaches the consumer. A valueless Option completes right away
// with an inert subscription; a value-bearing one waits for positive demand.
func (o Option[T]) Subscribe(c rx.Consumer[T, rx.Never]) {
	if !o.hasValue {
		c.OnSubscribe(rx.Inert())
		c.OnCompletion(rx.Finished[rx.Never]())
		return
	}

	c.OnSubscribe(&subscription[T]{
		id:       uuid.New(),
		value:    o.value,
		consumer: c,
	})
}

type subscription[T any] struct {
	id       uuid.UUID
	value    T
	consumer rx.Consumer[T, rx.Never]
}

func (s *subscription[T]) ID() uuid.UUID {
	return s.id
}

func (s *subscription[T]) Request(d rx.Demand) {
	if s.consumer == nil || !d.Positive() {
		return
	}

	c := s.consumer
	s.consumer = nil

	c.OnValue(s.value)
	c.OnCompletion(rx.Finished[rx.Never]())
}

func (s *subscription[T]) Cancel() {
	s.consumer = nil
}
