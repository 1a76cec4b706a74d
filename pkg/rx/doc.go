// Package rx contains the value types and capability contracts of a
// synchronous, demand-driven reactive core. A Producer hands a Subscription
// to a Consumer, the Consumer grants Demand, and the Producer pushes values
// (never exceeding granted demand) followed by exactly one terminal
// Completion.
//
// Highlights:
// - Demand: non-negative or unlimited flow-control count with saturating math
// - Completion: terminal outcome, Finished or Failed with a typed failure
// - Never: failure type of producers that are statically unable to fail
// - Producer/Consumer/Subscription: the three-party protocol
// - Sink: handler-struct adapter for building consumers from functions
// - Inert: no-op subscription for producers that complete at subscribe time
//
// Everything here is synchronous and executes on the caller's thread of
// control; the core creates no goroutines and performs no locking. Callers
// needing cross-thread delivery must add their own serialization layer.
package rx
