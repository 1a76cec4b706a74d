package cancel

import "sync"

// Scope owns a set of handles and fires every one of them when released.
// Handles already cancelled explicitly are skipped by their own one-shot
// flag. Release order is the reverse of ownership order.
type Scope struct {
	mu      sync.Mutex
	handles []*Handle
}

func NewScope() *Scope {
	return &Scope{}
}

// Own transfers the handle into the scope and returns it unchanged.
func (s *Scope) Own(h *Handle) *Handle {
	s.mu.Lock()
	s.handles = append(s.handles, h)
	s.mu.Unlock()
	return h
}

// New creates a handle from the action and owns it.
func (s *Scope) New(action func()) *Handle {
	return s.Own(New(action))
}

// Wrap type-erases the canceler into a handle and owns it.
func (s *Scope) Wrap(c Canceler) *Handle {
	return s.Own(Wrap(c))
}

// Release cancels every owned handle, newest first. Idempotent.
func (s *Scope) Release() {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.mu.Unlock()

	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].Cancel()
	}
}

// Scoped runs fn with a fresh scope and releases it on every exit path,
// including panic.
func Scoped(fn func(s *Scope)) {
	s := NewScope()
	defer s.Release()
	fn(s)
}
