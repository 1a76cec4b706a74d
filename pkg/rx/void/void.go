package void

import "github.com/ib-77/rx3/pkg/rx"

// Empty is a producer that emits no value and finishes at subscribe time.
// The type parameters only fix the element and failure types it is wired
// into; no value of either is ever constructed.
type Empty[T, E any] struct{}

func New[T, E any]() Empty[T, E] {
	return Empty[T, E]{}
}

func (Empty[T, E]) Subscribe(c rx.Consumer[T, E]) {
	c.OnSubscribe(rx.Inert())
	c.OnCompletion(rx.Finished[E]())
}
