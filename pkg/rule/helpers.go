package rule

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// accessKey and firingKey give the memoizing helpers below a cheap cache
// key, scoped per branch: a single Helpers is shared by an entire tableau
// build (one instance for every branch, not one per branch), so every key
// carries the owning branch's id to keep siblings' bookkeeping distinct.
type accessKey struct {
	branch tableau.BranchID
	world  int
}

type firingKey struct {
	branch   tableau.BranchID
	node     tableau.NodeID
	constant lexicon.Constant
}

// Helpers bundles the memoizing caches rule implementations share across a
// single tableau build: accessible-world and firing-history bookkeeping,
// plus max-constant lookup, all keyed by branch so concurrent branches
// never interfere.
type Helpers struct {
	access  map[accessKey][]int
	firings map[firingKey]bool
}

// NewHelpers returns an empty Helpers for a fresh tableau build.
func NewHelpers() *Helpers {
	return &Helpers{
		access:  make(map[accessKey][]int),
		firings: make(map[firingKey]bool),
	}
}

// InheritBranch copies every cache entry keyed to the from branch into a
// new entry keyed to the to branch, so a newly forked branch starts with
// its parent's access/firing bookkeeping instead of an empty cache — the
// same copy tableau.Tableau.NewBranch already performs for the branch's
// own constants/worlds sets. Callers invoke this immediately after
// tb.NewBranch, the only place a branch forks (pkg/logic/common.ApplyBranching).
func (h *Helpers) InheritBranch(from, to tableau.BranchID) {
	inherited := make(map[accessKey][]int)
	for k, v := range h.access {
		if k.branch == from {
			inherited[accessKey{to, k.world}] = append([]int(nil), v...)
		}
	}
	for k, v := range inherited {
		h.access[k] = v
	}

	firedKeys := make(map[firingKey]bool)
	for k, v := range h.firings {
		if k.branch == from {
			firedKeys[firingKey{to, k.node, k.constant}] = v
		}
	}
	for k, v := range firedKeys {
		h.firings[k] = v
	}
}

// AccessibleWorlds returns the worlds w' such that an access node ⟨w,w'⟩ is
// present on b, computed once per (branch, world) and cached.
func (h *Helpers) AccessibleWorlds(b *tableau.Branch, w int) []int {
	key := accessKey{b.ID(), w}
	if cached, ok := h.access[key]; ok {
		return cached
	}
	var out []int
	for _, n := range b.Nodes() {
		if n.HasAccess() && *n.World1 == w {
			out = append(out, *n.World2)
		}
	}
	h.access[key] = out
	return out
}

// InvalidateAccess drops the AccessibleWorlds cache entry for (b,w), to be
// called by access-relation rules after adding a new ⟨w,_⟩ edge.
func (h *Helpers) InvalidateAccess(b *tableau.Branch, w int) {
	delete(h.access, accessKey{b.ID(), w})
}

// HasFired reports whether the Universal/Necessity rule has already applied
// node to constant/world on branch, using a per (node, constant)
// bookkeeping to prevent refiring.
func (h *Helpers) HasFired(b *tableau.Branch, n *tableau.Node, c lexicon.Constant) bool {
	return h.firings[firingKey{b.ID(), n.ID(), c}]
}

// MarkFired records that node has fired for constant on branch.
func (h *Helpers) MarkFired(b *tableau.Branch, n *tableau.Node, c lexicon.Constant) {
	h.firings[firingKey{b.ID(), n.ID(), c}] = true
}

// MaxConstant returns the highest-index constant on b and whether b has any
// constants at all — the building block behind Tableau.FreshConstant, kept
// here too since rule implementations that need to *reason about* the
// current max (rather than mint a fresh one) call this directly.
func MaxConstant(b *tableau.Branch) (lexicon.Constant, bool) {
	consts := b.Constants()
	if len(consts) == 0 {
		return lexicon.Constant{}, false
	}
	return consts[len(consts)-1], true
}
