package rx

import "github.com/google/uuid"

type inertSubscription struct {
	id uuid.UUID
}

// Inert returns a subscription whose Request and Cancel do nothing. Producers
// that deliver their completion at subscribe time hand it to the consumer to
// satisfy the OnSubscribe-first contract.
func Inert() Subscription {
	return inertSubscription{id: uuid.New()}
}

func (s inertSubscription) ID() uuid.UUID {
	return s.id
}

func (s inertSubscription) Request(_ Demand) {}

func (s inertSubscription) Cancel() {}
