// Package void contains the zero-cardinality producer: it never emits a
// value and finishes immediately at subscribe time.
package void
