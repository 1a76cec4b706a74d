// Package cancel contains a type-erased, idempotent owner of one cancellable
// resource, and a scope that guarantees cancellation fires on exit.
//
// Highlights:
// - Handle: wraps a cancel action or a Canceler; Cancel fires exactly once,
//   safe against racing callers
// - Scope/Scoped: owned handles fire automatically when the scope ends,
//   on every exit path, unless already cancelled
//
// For a single handle, `defer h.Cancel()` is the plain idiom; Scoped exists
// for code that accumulates handles over its lifetime.
package cancel
