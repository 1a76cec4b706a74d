// Package fallible contains the exactly-one-or-failure producer. A Result
// either holds one value, delivered like a single-value producer, or holds a
// failure of type E, delivered as a Failed completion immediately at
// subscribe time. Try-operators on single-value producers capture transform
// errors into a failed Result, so the failure surfaces only when a consumer
// eventually subscribes.
package fallible
