package rule

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// NodeFilter selects candidate source nodes for a rule's SearchTargets.
type NodeFilter func(n *tableau.Node) bool

// SentenceFilter selects nodes by a predicate over their sentence, skipping
// nodes with no sentence (access-relation and flag nodes).
func SentenceFilter(pred func(s lexicon.Sentence) bool) NodeFilter {
	return func(n *tableau.Node) bool {
		if n.Sentence == nil {
			return false
		}
		return pred(n.Sentence)
	}
}

// Designation filters nodes by their designation marker, for many-valued
// logics where rules key off `+A`/`-A`.
func Designation(want bool) NodeFilter {
	return func(n *tableau.Node) bool {
		return n.HasDesignation() && n.IsDesignated() == want
	}
}

// AnyDesignation matches nodes regardless of their designation marker,
// for logics without one (bivalent/modal-only).
func AnyDesignation() NodeFilter {
	return func(*tableau.Node) bool { return true }
}

// AtWorld filters nodes stamped with exactly world w.
func AtWorld(w int) NodeFilter {
	return func(n *tableau.Node) bool {
		return n.World != nil && *n.World == w
	}
}

// Unticked composes with another filter to additionally require the node be
// unticked on branch — the common precondition for every non-idempotent
// rule: a ticking rule's source node must be unticked.
func Unticked(b *tableau.Branch, f NodeFilter) NodeFilter {
	return func(n *tableau.Node) bool {
		return !b.Ticked(n) && f(n)
	}
}

// And composes filters, matching only when every one matches.
func And(filters ...NodeFilter) NodeFilter {
	return func(n *tableau.Node) bool {
		for _, f := range filters {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

// Select returns every node on b matching f, in branch order.
func Select(b *tableau.Branch, f NodeFilter) []*tableau.Node {
	var out []*tableau.Node
	for _, n := range b.Nodes() {
		if f(n) {
			out = append(out, n)
		}
	}
	return out
}
