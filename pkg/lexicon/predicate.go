package lexicon

import "fmt"

// Predicate identifies a predicate symbol by (index, subscript) and fixes its
// arity. User predicates have non-negative index; the two system predicates
// (Existence, Identity) use reserved negative indices so they never collide
// with a user predicate.
type Predicate struct {
	Index     int
	Subscript int
	Arity     int
}

const (
	existenceIndex = -1
	identityIndex  = -2
)

// Existence is the fixed system predicate of arity 1.
var Existence = Predicate{Index: existenceIndex, Subscript: 0, Arity: 1}

// Identity is the fixed system predicate of arity 2.
var Identity = Predicate{Index: identityIndex, Subscript: 0, Arity: 2}

// System reports whether p is one of the fixed system predicates.
func (p Predicate) System() bool {
	return p == Existence || p == Identity
}

func (p Predicate) String() string {
	switch p {
	case Existence:
		return "Existence"
	case Identity:
		return "Identity"
	default:
		if p.Subscript == 0 {
			return fmt.Sprintf("Predicate(%d)", p.Index)
		}
		return fmt.Sprintf("Predicate(%d,%d)", p.Index, p.Subscript)
	}
}

const rankPredicate = 0

// SortTuple yields the total-ordering key for the predicate.
func (p Predicate) SortTuple() []int {
	return []int{rankPredicate, p.Index, p.Subscript, p.Arity}
}

// NewPredicate validates and constructs a user predicate. Arity must be >= 1.
func NewPredicate(index, subscript, arity int) (Predicate, error) {
	if arity < 1 {
		return Predicate{}, fmt.Errorf("predicate arity must be >= 1, got %d", arity)
	}
	if index < 0 {
		return Predicate{}, fmt.Errorf("user predicate index must be >= 0, got %d", index)
	}
	return Predicate{Index: index, Subscript: subscript, Arity: arity}, nil
}
