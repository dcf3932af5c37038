// Package predstore holds the indexed collection of user predicates plus the
// two fixed system predicates (Existence, Identity), and the Argument type
// (premises plus conclusion) built over them.
package predstore

import (
	"sort"
	"sync"

	"github.com/owings1/pytableaux/pkg/lexicon"
)

type key struct {
	index     int
	subscript int
}

// Store is a predicate store: an indexed collection of user predicates, with
// the system predicates always resolvable regardless of registration. A
// registry-under-RWMutex shape, but scoped to one instance per
// argument/session rather than global, since predicate vocabularies vary
// per problem.
type Store struct {
	mu    sync.RWMutex
	preds map[key]lexicon.Predicate
}

// New returns an empty predicate store (system predicates are always
// available without being added).
func New() *Store {
	return &Store{preds: make(map[key]lexicon.Predicate)}
}

// Add registers a user predicate. It returns a DuplicatePredicateError if a
// distinct predicate is already registered at the same (index, subscript).
func (s *Store) Add(p lexicon.Predicate) error {
	if p.System() {
		return &DuplicatePredicateError{Predicate: p}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{p.Index, p.Subscript}
	if existing, ok := s.preds[k]; ok && existing != p {
		return &DuplicatePredicateError{Predicate: p}
	}
	s.preds[k] = p
	return nil
}

// Get resolves a predicate by (index, subscript), checking system predicates
// first.
func (s *Store) Get(index, subscript int) (lexicon.Predicate, bool) {
	if lexicon.Existence.Index == index && lexicon.Existence.Subscript == subscript {
		return lexicon.Existence, true
	}
	if lexicon.Identity.Index == index && lexicon.Identity.Subscript == subscript {
		return lexicon.Identity, true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.preds[key{index, subscript}]
	return p, ok
}

// MustGet resolves a predicate or panics; used only where the caller already
// validated the key exists (e.g. constructing fixtures from trusted data).
func (s *Store) MustGet(index, subscript int) lexicon.Predicate {
	p, ok := s.Get(index, subscript)
	if !ok {
		panic(&MissingPredicateError{Index: index, Subscript: subscript})
	}
	return p
}

// All returns every user predicate, sorted by sort tuple. System predicates
// are not included (they are not "in" any store, they are always available).
func (s *Store) All() []lexicon.Predicate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]lexicon.Predicate, 0, len(s.preds))
	for _, p := range s.preds {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return lexicon.Less(out[i], out[j]) })
	return out
}
