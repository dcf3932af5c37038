// Package rule implements the tableau rule framework: the Rule contract,
// Target descriptor, and the group/root ordering the engine walks.
// Concrete operator/quantifier/modal/access/closure rules live under
// pkg/logic/*, built on the scaffolding here as ordered rule groups.
package rule

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// Target names a candidate rule application: the rule, branch,
// source nodes to consume, any new constants/worlds the application would
// introduce, and a preview of the nodes it would append. The engine computes
// Score via the owning Rule's ScoreCandidate before comparing candidates.
type Target struct {
	Rule         Rule
	Branch       *tableau.Branch
	Nodes        []*tableau.Node
	NewConstants []lexicon.Constant
	NewWorlds    []int
	Preview      []tableau.NodeSpec
	Score        int
}

// Rule is a descriptor of a single tableau-building move.
type Rule interface {
	// Name identifies the rule for history entries and tie-break ordering.
	Name() string
	// SearchTargets returns every candidate application of this rule on
	// branch, unscored (scoring happens separately via ScoreCandidate so the
	// engine can apply rank optimization uniformly).
	SearchTargets(branch *tableau.Branch) []*Target
	// ScoreCandidate assigns target.Score a value; higher is preferred.
	// Implementations typically embed BaseRule and rely on its default.
	ScoreCandidate(target *Target) int
	// Apply performs the move, returning the resulting branches (≥ 1; a
	// branching rule returns one per disjunct, all children of the same
	// pre-existing source branch).
	Apply(target *Target, tb *tableau.Tableau) ([]*tableau.Branch, error)
	// Branching is 0 for non-branching rules, n-1 for an n-way branch.
	Branching() int
	// Ticking reports whether a successful Apply ticks every source node on
	// every resulting branch.
	Ticking() bool
}

// BaseRule supplies the zero-opinion default score. For a zero score the
// engine falls back to minus the BranchingComplexity of the target's
// source sentence, so a decomposition that introduces fewer branches
// outranks one that introduces more when both are candidates in the same
// group.
type BaseRule struct{}

// ScoreCandidate is the zero-opinion default: embedding rules may shadow it.
func (BaseRule) ScoreCandidate(*Target) int { return 0 }

// BranchingComplexity computes the branching complexity of s: 0 for
// atoms, +1 for a disjunction-like operator (Disjunction, Conditional,
// Biconditional — every operator whose designated-branching rule forks),
// +0 for conjunction-like and unary operators. Used as the rank-optimization
// scoring default for operator rules in pkg/logic/*.
func BranchingComplexity(s lexicon.Sentence) int {
	total := 0
	for _, op := range lexicon.Operators(s) {
		switch op {
		case lexicon.Disjunction, lexicon.MaterialConditional, lexicon.MaterialBiconditional,
			lexicon.Conditional, lexicon.Biconditional:
			total++
		}
	}
	return total
}

// Group is an ordered, named set of rules tried together, such as
// "non-branching operator rules" or "branching operator rules". Within a
// group every rule contributes candidates; the highest-scored candidate
// across the whole group wins.
type Group struct {
	Name  string
	Rules []Rule
}

// NewGroup constructs a named rule group.
func NewGroup(name string, rules ...Rule) *Group {
	return &Group{Name: name, Rules: rules}
}

// Root is the ordered sequence of groups a Logic registers: the closure
// group, then the rest, in order. The closure group, by convention, is
// Groups[0].
type Root struct {
	Groups []*Group
}

// NewRoot builds a Root from ordered groups, closure group first.
func NewRoot(groups ...*Group) *Root {
	return &Root{Groups: groups}
}

// ClosureGroup returns the first group, which by convention holds only
// closure rules and is tried ahead of every other group every step.
func (r *Root) ClosureGroup() *Group {
	if len(r.Groups) == 0 {
		return nil
	}
	return r.Groups[0]
}

// NonClosureGroups returns every group after the closure group, in the
// declared priority order the engine iterates during rule selection.
func (r *Root) NonClosureGroups() []*Group {
	if len(r.Groups) <= 1 {
		return nil
	}
	return r.Groups[1:]
}
