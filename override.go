package verdict

import "iter"

// Capability interfaces let types answer property lookups and iteration
// themselves instead of going through reflection.
//
// When a candidate implements one of these, Get and Iterate call the
// interface method and skip their reflective probes entirely. This is the
// way to validate types whose state is not held in exported fields.

// Propertied answers property lookups for Property and Properties checks.
type Propertied interface {
	// Property returns the value stored under key and whether it exists.
	Property(key string) (any, bool)
}

// Iterable produces elements for ForOf checks.
type Iterable interface {
	// Elements yields the elements in order.
	Elements() iter.Seq[any]
}
