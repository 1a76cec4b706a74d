package cancel

import "sync"

// Canceler is anything exposing an idempotent-intent cancel capability. Every
// rx.Subscription satisfies it.
type Canceler interface {
	Cancel()
}

// Handle exclusively owns one cancel action. Cancel runs it exactly once no
// matter how many times, or from how many goroutines, it is called.
type Handle struct {
	once   sync.Once
	action func()
}

// New wraps a cancel action. The action must be non-nil.
func New(action func()) *Handle {
	if action == nil {
		panic("cancel: New requires non-nil action")
	}
	return &Handle{action: action}
}

// Wrap type-erases a cancellable resource into a Handle. The handle takes
// exclusive ownership; the resource should not be cancelled through any other
// path.
func Wrap(c Canceler) *Handle {
	if c == nil {
		panic("cancel: Wrap requires non-nil canceler")
	}
	return New(c.Cancel)
}

// Cancel fires the underlying action. Repeated calls are no-ops.
func (h *Handle) Cancel() {
	h.once.Do(h.action)
}
