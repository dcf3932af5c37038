// Package engine implements the build/step driver: a closure-pass-then-
// rule-selection loop, rank/group optimization, and timeout/step-cap
// termination, run as single-threaded cooperative scheduling that only
// yields at well-defined boundaries. golang.org/x/sync/errgroup drives the
// concurrent batch-proving fan-out in BuildMany.
package engine

import (
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// StepResult reports the outcome of a single step(tableau) call: whether a
// rule applied, which one, and on which branch.
type StepResult struct {
	Applied bool
	Rule    string
	Branch  tableau.BranchID
}

// Step performs one closure-pass-then-rule-selection cycle. Build calls it
// in a loop; internal/tui calls it directly for single-step animation.
func Step(tb *tableau.Tableau, root *rule.Root, opts Options) (StepResult, error) {
	res, err := applyClosurePass(tb, root.ClosureGroup())
	if err != nil || res.Applied {
		return res, err
	}
	return applyBestTarget(tb, root.NonClosureGroups(), opts)
}

// applyClosurePass applies the first closure target found on any open
// branch, closing it. Distinct branches close independently across
// successive Step calls rather than all at once, so each closure keeps its
// own history entry and step number.
func applyClosurePass(tb *tableau.Tableau, closure *rule.Group) (StepResult, error) {
	if closure == nil {
		return StepResult{}, nil
	}
	for _, b := range tb.OpenBranches() {
		for _, r := range closure.Rules {
			targets := r.SearchTargets(b)
			if len(targets) == 0 {
				continue
			}
			return applyTarget(tb, targets[0])
		}
	}
	return StepResult{}, nil
}

// applyBestTarget selects a target from groups according to opts.IsGroupOptim.
// With group optimization on, it iterates groups in declared priority
// order, skipping a group with no candidates at all (see DESIGN.md for why
// this corpus treats "no candidates" rather than a literal "best score <= 0"
// as the skip condition: genericRule's score defaults to 0 or lower by
// construction, which would make a strict positivity test vacuous), and
// commits to the first non-empty group without considering any later one.
// With it off, group priority is ignored entirely: candidates from every
// group are pooled together before picking one, so a low-priority group's
// rule can be chosen over a higher-priority group's rule when rank
// optimization scores it higher.
func applyBestTarget(tb *tableau.Tableau, groups []*rule.Group, opts Options) (StepResult, error) {
	if opts.IsGroupOptim {
		for _, g := range groups {
			candidates := collectCandidates(tb, g.Rules)
			if len(candidates) == 0 {
				continue
			}
			return applyTarget(tb, pickTarget(candidates, opts))
		}
		return StepResult{}, nil
	}

	var candidates []*rule.Target
	for _, g := range groups {
		candidates = append(candidates, collectCandidates(tb, g.Rules)...)
	}
	if len(candidates) == 0 {
		return StepResult{}, nil
	}
	return applyTarget(tb, pickTarget(candidates, opts))
}

func collectCandidates(tb *tableau.Tableau, rules []rule.Rule) []*rule.Target {
	var candidates []*rule.Target
	for _, r := range rules {
		for _, b := range tb.OpenBranches() {
			candidates = append(candidates, r.SearchTargets(b)...)
		}
	}
	return candidates
}

// pickTarget returns candidates[0] unless rank optimization is on, in which
// case it returns the highest-scored candidate, ties broken by declaration
// order.
func pickTarget(candidates []*rule.Target, opts Options) *rule.Target {
	best := candidates[0]
	if !opts.IsRankOptim {
		return best
	}
	bestScore := scoreTarget(best)
	for _, c := range candidates[1:] {
		if s := scoreTarget(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

func applyTarget(tb *tableau.Tableau, target *rule.Target) (StepResult, error) {
	if _, err := target.Rule.Apply(target, tb); err != nil {
		return StepResult{}, err
	}
	tb.AdvanceStep()
	ids := make([]tableau.NodeID, len(target.Nodes))
	for i, n := range target.Nodes {
		ids[i] = n.ID()
	}
	tb.RecordHistory(target.Rule.Name(), target.Branch.ID(), ids)
	return StepResult{Applied: true, Rule: target.Rule.Name(), Branch: target.Branch.ID()}, nil
}

// scoreTarget computes a scalar score for t: a rule's own ScoreCandidate
// opinion if it has one, else the negative branching complexity of its
// source sentence, so a decomposition that doesn't introduce a branch
// outranks one that does when both are candidates in the same group.
func scoreTarget(t *rule.Target) int {
	if s := t.Rule.ScoreCandidate(t); s != 0 {
		return s
	}
	if len(t.Nodes) > 0 && t.Nodes[0].Sentence != nil {
		return -rule.BranchingComplexity(t.Nodes[0].Sentence)
	}
	return 0
}
