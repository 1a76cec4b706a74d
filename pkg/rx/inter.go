package rx

import "github.com/google/uuid"

// Producer is a subscribable source of values of type T that may terminate
// with a failure of type E.
type Producer[T, E any] interface {
	// Subscribe attaches the consumer. It must synchronously call
	// OnSubscribe exactly once, before any value or completion.
	Subscribe(c Consumer[T, E])
}

// Subscription identifies one producer-consumer pairing and carries the
// consumer's flow-control capabilities for it.
type Subscription interface {
	// ID identifies the pairing.
	ID() uuid.UUID
	// Request grants up to d additional values. Demand accumulates across
	// calls, saturating at unlimited. Safe to call again from within the
	// consumer's own OnValue; a no-op once the subscription terminated.
	Request(d Demand)
	// Cancel releases the producer's reference to the consumer. Idempotent;
	// any subsequent Request is a no-op.
	Cancel()
}

// Consumer is a sink receiving a subscription, values, and a terminal
// completion.
type Consumer[T, E any] interface {
	// OnSubscribe is called exactly once per subscription, before any value.
	OnSubscribe(s Subscription)
	// OnValue is called with each emitted value, never exceeding previously
	// granted demand. The returned demand is added to what is outstanding.
	OnValue(v T) Demand
	// OnCompletion is called at most once; nothing follows it.
	OnCompletion(c Completion[E])
}
