package predstore

import (
	"fmt"

	"github.com/owings1/pytableaux/pkg/lexicon"
)

// DuplicatePredicateError reports a predicate-store key conflict on Add.
type DuplicatePredicateError struct {
	Predicate lexicon.Predicate
}

func (e *DuplicatePredicateError) Error() string {
	return fmt.Sprintf("predicate already registered at index %d subscript %d", e.Predicate.Index, e.Predicate.Subscript)
}

// MissingPredicateError reports a lookup for an unregistered (index,
// subscript) pair.
type MissingPredicateError struct {
	Index, Subscript int
}

func (e *MissingPredicateError) Error() string {
	return fmt.Sprintf("no predicate registered at index %d subscript %d", e.Index, e.Subscript)
}
