package just

import (
	"github.com/google/uuid"

	"github.com/ib-77/rx3/pkg/rx"
)

// Just is a producer holding one immutable value. It emits that value to each
// subscriber on the first positive request, then finishes. Two Just values
// are equal iff their held values are equal, independent of any subscription
// state.
type Just[T any] struct {
	value T
}

func Of[T any](v T) Just[T] {
	return Just[T]{value: v}
}

// Value returns the held value.
func (j Just[T]) Value() T {
	return j.value
}

// Subscribe attaches the consumer and synchronously delivers OnSubscribe.
// Nothing else happens until the consumer requests positive demand.
func (j Just[T]) Subscribe(c rx.Consumer[T, rx.Never]) {
	c.OnSubscribe(&subscription[T]{
		id:       uuid.New(),
		value:    j.value,
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

// Request delivers the value and the completion on the first call with
// positive demand. The consumer reference is taken before delivery, so a
// reentrant Request from within OnValue sees a terminated subscription and
// does nothing; at most one value+completion pair is ever produced.
func (s *subscription[T]) Request(d rx.Demand) {
	if s.consumer == nil || !d.Positive() {
		return
	}

	c := s.consumer
	s.consumer = nil

	c.OnValue(s.value) // extra demand discarded: cardinality is fixed at one
	c.OnCompletion(rx.Finished[rx.Never]())
}

func (s *subscription[T]) Cancel() {
	s.consumer = nil
}
