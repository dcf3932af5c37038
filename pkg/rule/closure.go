package rule

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// Closure rules never apply a transformation beyond flagging the branch
// closed. Apply on every closure rule below is identical: emit
// one child branch carrying a tableau.FlagClosure node, close it.

func closureApply(target *Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	b := target.Branch
	if _, err := tb.AppendNode(b, tableau.FlagSpec(tableau.FlagClosure)); err != nil {
		return nil, err
	}
	if err := tb.CloseBranch(b, tb.Step()); err != nil {
		return nil, err
	}
	return []*tableau.Branch{b}, nil
}

// ClassicalClosure closes a branch that contains both A and ¬A, for
// bivalent (non-designated) logics: CPL, CFOL, and the
// classical-frame modal logics built on them.
type ClassicalClosure struct{ BaseRule }

func (ClassicalClosure) Name() string     { return "ClassicalClosure" }
func (ClassicalClosure) Branching() int   { return 0 }
func (ClassicalClosure) Ticking() bool    { return false }
func (ClassicalClosure) Apply(t *Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	return closureApply(t, tb)
}

func (ClassicalClosure) SearchTargets(b *tableau.Branch) []*Target {
	for _, n := range b.Nodes() {
		if n.Sentence == nil {
			continue
		}
		neg := lexicon.Negate(n.Sentence)
		if matches := b.NodesWithSentence(neg); len(matches) > 0 {
			if sameWorld(n, matches[0]) {
				return []*Target{{Rule: ClassicalClosure{}, Branch: b, Nodes: []*tableau.Node{n, matches[0]}}}
			}
		}
	}
	return nil
}

func sameWorld(a, b *tableau.Node) bool {
	if a.World == nil && b.World == nil {
		return true
	}
	return a.World != nil && b.World != nil && *a.World == *b.World
}

// DesignationClosure closes a branch as soon as one sentence appears both
// designated and undesignated. Shared by every designation-based
// many-valued logic.
type DesignationClosure struct{ BaseRule }

func (DesignationClosure) Name() string   { return "DesignationClosure" }
func (DesignationClosure) Branching() int { return 0 }
func (DesignationClosure) Ticking() bool  { return false }
func (DesignationClosure) Apply(t *Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	return closureApply(t, tb)
}

func (DesignationClosure) SearchTargets(b *tableau.Branch) []*Target {
	for _, n := range b.Nodes() {
		if n.Sentence == nil || !n.HasDesignation() {
			continue
		}
		for _, other := range b.NodesWithSentence(n.Sentence) {
			if other != n && other.HasDesignation() && other.IsDesignated() != n.IsDesignated() && sameWorld(n, other) {
				return []*Target{{Rule: DesignationClosure{}, Branch: b, Nodes: []*tableau.Node{n, other}}}
			}
		}
	}
	return nil
}

// GlutClosure closes a branch on a designated A and designated ¬A,
// used by paracomplete many-valued logics (K3, K3W, K3WQ, MH, L3, G3,
// GO, B3E) that tolerate gaps but not gluts surviving open.
type GlutClosure struct{ BaseRule }

func (GlutClosure) Name() string   { return "GlutClosure" }
func (GlutClosure) Branching() int { return 0 }
func (GlutClosure) Ticking() bool  { return false }
func (GlutClosure) Apply(t *Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	return closureApply(t, tb)
}

func (GlutClosure) SearchTargets(b *tableau.Branch) []*Target {
	return designatedPairClosure(b, GlutClosure{}, true)
}

// GapClosure closes a branch on an undesignated A and undesignated ¬A,
// used by paraconsistent many-valued logics (LP, RM3, NH, P3) that
// tolerate gluts but not gaps surviving open.
type GapClosure struct{ BaseRule }

func (GapClosure) Name() string   { return "GapClosure" }
func (GapClosure) Branching() int { return 0 }
func (GapClosure) Ticking() bool  { return false }
func (GapClosure) Apply(t *Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	return closureApply(t, tb)
}

func (GapClosure) SearchTargets(b *tableau.Branch) []*Target {
	return designatedPairClosure(b, GapClosure{}, false)
}

func designatedPairClosure(b *tableau.Branch, r Rule, wantDesignated bool) []*Target {
	for _, n := range b.Nodes() {
		if n.Sentence == nil || !n.HasDesignation() || n.IsDesignated() != wantDesignated {
			continue
		}
		neg := lexicon.Negate(n.Sentence)
		for _, other := range b.NodesWithSentence(neg) {
			if other.HasDesignation() && other.IsDesignated() == wantDesignated && sameWorld(n, other) {
				return []*Target{{Rule: r, Branch: b, Nodes: []*tableau.Node{n, other}}}
			}
		}
	}
	return nil
}
