package rx

// Sink adapts plain functions into a Consumer. Any nil field falls back to a
// default: Subscribed requests Unlimited, Value grants no additional demand,
// Completed ignores the completion.
type Sink[T, E any] struct {
	Subscribed func(s Subscription)
	Value      func(v T) Demand
	Completed  func(c Completion[E])
}

func (s Sink[T, E]) OnSubscribe(sub Subscription) {
	if s.Subscribed != nil {
		s.Subscribed(sub)
		return
	}
	sub.Request(Unlimited)
}

func (s Sink[T, E]) OnValue(v T) Demand {
	if s.Value != nil {
		return s.Value(v)
	}
	return NoDemand
}

func (s Sink[T, E]) OnCompletion(c Completion[E]) {
	if s.Completed != nil {
		s.Completed(c)
	}
}
