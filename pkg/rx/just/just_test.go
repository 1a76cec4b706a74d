package just

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ib-77/rx3/pkg/rx"
)

// recorder captures every protocol event of one subscription. The initial
// demand is requested from within OnSubscribe.
type recorder[T any] struct {
	initial     rx.Demand
	sub         rx.Subscription
	subscribes  int
	values      []T
	completions []rx.Completion[rx.Never]
}

func (r *recorder[T]) OnSubscribe(s rx.Subscription) {
	r.subscribes++
	r.sub = s
	s.Request(r.initial)
}

func (r *recorder[T]) OnValue(v T) rx.Demand {
	r.values = append(r.values, v)
	return rx.NoDemand
}

func (r *recorder[T]) OnCompletion(c rx.Completion[rx.Never]) {
	r.completions = append(r.completions, c)
}

func TestSubscribe_DeliversValueThenFinished(t *testing.T) {
	t.Parallel()

	r := &recorder[int]{initial: rx.Unlimited}
	Of(5).Subscribe(r)

	if r.subscribes != 1 {
		t.Fatalf("expected exactly one OnSubscribe, got %d", r.subscribes)
	}
	if len(r.values) != 1 || r.values[0] != 5 {
		t.Fatalf("expected single value 5, got %v", r.values)
	}
	if len(r.completions) != 1 || !r.completions[0].IsFinished() {
		t.Fatalf("expected single Finished completion, got %v", r.completions)
	}
	if r.sub.ID() == uuid.Nil {
		t.Fatalf("expected non-nil subscription id")
	}
}

func TestSubscribe_ZeroDemandWaits(t *testing.T) {
	t.Parallel()

	r := &recorder[int]{initial: rx.NoDemand}
	Of(7).Subscribe(r)

	if len(r.values) != 0 || len(r.completions) != 0 {
		t.Fatalf("expected no delivery on zero demand, got values=%v completions=%v", r.values, r.completions)
	}

	r.sub.Request(rx.MaxDemand(1))
	if len(r.values) != 1 || r.values[0] != 7 || len(r.completions) != 1 {
		t.Fatalf("expected delivery on later positive request, got values=%v completions=%v", r.values, r.completions)
	}
}

func TestRequest_AfterTerminalIsNoOp(t *testing.T) {
	t.Parallel()

	r := &recorder[int]{initial: rx.Unlimited}
	Of(1).Subscribe(r)

	r.sub.Request(rx.Unlimited)
	r.sub.Request(rx.MaxDemand(10))

	if len(r.values) != 1 || len(r.completions) != 1 {
		t.Fatalf("expected no repeated delivery, got values=%v completions=%v", r.values, r.completions)
	}
}

func TestCancel_BeforeRequestSuppressesDelivery(t *testing.T) {
	t.Parallel()

	r := &recorder[int]{initial: rx.NoDemand}
	Of(3).Subscribe(r)

	r.sub.Cancel()
	r.sub.Request(rx.Unlimited)

	if len(r.values) != 0 || len(r.completions) != 0 {
		t.Fatalf("expected nothing after cancel, got values=%v completions=%v", r.values, r.completions)
	}
}

func TestCancel_AfterTerminalIsNoOp(t *testing.T) {
	t.Parallel()

	r := &recorder[int]{initial: rx.Unlimited}
	Of(3).Subscribe(r)

	r.sub.Cancel()
	r.sub.Cancel()

	if len(r.values) != 1 || len(r.completions) != 1 {
		t.Fatalf("expected delivery untouched by post-terminal cancel, got values=%v completions=%v", r.values, r.completions)
	}
}

// reentrant requests more demand from inside its own OnValue.
type reentrant struct {
	sub         rx.Subscription
	values      []int
	completions []rx.Completion[rx.Never]
}

func (r *reentrant) OnSubscribe(s rx.Subscription) {
	r.sub = s
	s.Request(rx.MaxDemand(1))
}

func (r *reentrant) OnValue(v int) rx.Demand {
	r.values = append(r.values, v)
	r.sub.Request(rx.Unlimited)
	return rx.MaxDemand(5)
}

func (r *reentrant) OnCompletion(c rx.Completion[rx.Never]) {
	r.completions = append(r.completions, c)
}

func TestRequest_ReentrantFromOnValue(t *testing.T) {
	t.Parallel()

	r := &reentrant{}
	Of(9).Subscribe(r)

	if len(r.values) != 1 || r.values[0] != 9 {
		t.Fatalf("expected exactly one value despite reentrant request, got %v", r.values)
	}
	if len(r.completions) != 1 || !r.completions[0].IsFinished() {
		t.Fatalf("expected exactly one Finished completion, got %v", r.completions)
	}
}

func TestSubscribe_IndependentConsumers(t *testing.T) {
	t.Parallel()

	j := Of("v")
	a := &recorder[string]{initial: rx.Unlimited}
	b := &recorder[string]{initial: rx.Unlimited}

	j.Subscribe(a)
	j.Subscribe(b)

	if len(a.values) != 1 || len(b.values) != 1 || a.values[0] != "v" || b.values[0] != "v" {
		t.Fatalf("expected both consumers to observe the value, got a=%v b=%v", a.values, b.values)
	}
	if a.sub.ID() == b.sub.ID() {
		t.Fatalf("expected distinct subscription ids per pairing")
	}
}

func TestEquality_ValueSemantics(t *testing.T) {
	t.Parallel()

	if Of(5) != Of(5) {
		t.Fatalf("expected producers holding equal values to be equal")
	}
	if Of(5) == Of(6) {
		t.Fatalf("expected producers holding different values to differ")
	}

	// subscription state must not affect equality
	a, b := Of(5), Of(5)
	a.Subscribe(&recorder[int]{initial: rx.Unlimited})
	if a != b {
		t.Fatalf("expected equality independent of subscription state")
	}
}

func TestValue(t *testing.T) {
	t.Parallel()

	if got := Of(42).Value(); got != 42 {
		t.Fatalf("expected held value 42, got %d", got)
	}
}
