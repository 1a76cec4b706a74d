package chain

import (
	"github.com/ib-77/rx3/pkg/rx/just"
	"github.com/ib-77/rx3/pkg/rx/option"
)

// Chain composes same-type, zero-or-one transforms fluently. It is a value;
// every step returns a new Chain.
type Chain[T any] struct {
	opt option.Option[T]
}

func From[T any](j just.Just[T]) Chain[T] {
	return Chain[T]{opt: option.Some(j.Value())}
}

func FromOption[T any](o option.Option[T]) Chain[T] {
	return Chain[T]{opt: o}
}

// Result returns the zero-or-one producer the chain built up.
func (c Chain[T]) Result() option.Option[T] {
	return c.opt
}

// Map applies f to the value, if any.
func (c Chain[T]) Map(f func(v T) T) Chain[T] {
	if !c.opt.HasValue() {
		return c
	}
	return Chain[T]{opt: option.Some(f(c.opt.Value()))}
}

// Filter drops the value when pred rejects it.
func (c Chain[T]) Filter(pred func(v T) bool) Chain[T] {
	if !c.opt.HasValue() || pred(c.opt.Value()) {
		return c
	}
	return Chain[T]{opt: option.None[T]()}
}

// Tee passes the value, if any, to a side effect and continues unchanged.
func (c Chain[T]) Tee(onValue func(v T)) Chain[T] {
	if c.opt.HasValue() {
		onValue(c.opt.Value())
	}
	return c
}

// Or returns the receiver if it carries a value, otherwise the alternative.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.opt.HasValue() {
		return c
	}
	return alternative
}
