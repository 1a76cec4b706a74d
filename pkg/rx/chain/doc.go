// Package chain provides a fluent builder over the zero-or-one cardinality
// for same-type composition. Operations short-circuit once the chain is
// empty; Or picks the first value-bearing alternative.
package chain
