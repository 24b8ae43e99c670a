// Package query provides indexing and predicate search over an immutable
// table. A Query holds a shared reference to one table and accumulates named
// single-column indexes; search runs against an index when one exists and
// falls back to a full column scan otherwise, with identical results either
// way.
//
// A table may be shared by several Query instances at once. The Query's own
// index set is mutable state: concurrent AddIndex/Grep calls on the same
// Query require external synchronization.
package query

import (
	"reflect"
	"strings"
)

// Predicate is a boolean test over a single cell value.
type Predicate interface {
	Match(v interface{}) bool
}

// PredicateFunc adapts a plain function to the Predicate interface.
type PredicateFunc func(v interface{}) bool

// Match implements Predicate.
func (f PredicateFunc) Match(v interface{}) bool {
	return f(v)
}

// And returns a predicate that matches when every sub-predicate matches.
func And(preds ...Predicate) Predicate {
	return PredicateFunc(func(v interface{}) bool {
		for _, p := range preds {
			if !p.Match(v) {
				return false
			}
		}
		return true
	})
}

// Any returns a predicate that matches when at least one sub-predicate
// matches.
func Any(preds ...Predicate) Predicate {
	return PredicateFunc(func(v interface{}) bool {
		for _, p := range preds {
			if p.Match(v) {
				return true
			}
		}
		return false
	})
}

// Equals matches cells structurally equal to want.
func Equals(want interface{}) Predicate {
	return PredicateFunc(func(v interface{}) bool {
		return reflect.DeepEqual(v, want)
	})
}

// Contains matches string cells containing the given substring. Non-string
// cells never match.
func Contains(sub string) Predicate {
	return PredicateFunc(func(v interface{}) bool {
		s, ok := v.(string)
		return ok && strings.Contains(s, sub)
	})
}
