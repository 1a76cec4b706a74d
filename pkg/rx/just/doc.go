// Package just contains the canonical single-value producer and its eager
// operator family. A Just[T] emits exactly one value and then finishes; it
// can never fail.
//
// Highlights:
// - Of: construct a Just[T] holding one immutable value
// - Map/Reduce/Scan/Count/Contains/AllSatisfy: exactly-one transforms
// - TryMap/TryReduce/TryScan and friends: capture a transform error into a
//   fallible.Result instead of letting it escape the call
// - Filter/CompactMap/DropFirst/Prefix/OutputAt/OutputIn: zero-or-one
//   transforms yielding an option.Option
// - SetFailureType/MapError: failure-type retagging, never actually failing
// - IgnoreOutput: drop the value, keep the completion
//
// Every operator is eager: the user-supplied transform runs at the call site,
// at composition time. Only delivery of the already-computed result is
// deferred until a consumer requests non-zero demand. Index-based operators
// treat negative counts and indices as programmer misuse and panic.
package just
