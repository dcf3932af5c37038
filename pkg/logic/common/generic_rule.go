package common

import (
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// genericRule adapts a (match, apply) pair into a rule.Rule, so every
// structural decomposition rule in this package is one line of table data
// rather than a bespoke type: a rule is polymorphic over exactly this
// shape — search/score/apply/branching/ticking.
type genericRule struct {
	rule.BaseRule
	name      string
	branching int
	ticking   bool
	match     rule.NodeFilter
	// exhausted reports, for a non-ticking rule, whether n has no remaining
	// work left to contribute on b (every constant/world it could fire for
	// already has). nil means the rule is never exhausted once matched
	// (the usual case for ticking rules, which SearchTargets already drops
	// once ticked). A non-ticking rule that omits this check would keep
	// offering the same spent node as a candidate forever.
	exhausted func(b *tableau.Branch, n *tableau.Node) bool
	apply     func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error)
}

func (r *genericRule) Name() string   { return r.name }
func (r *genericRule) Branching() int { return r.branching }
func (r *genericRule) Ticking() bool  { return r.ticking }

func (r *genericRule) SearchTargets(b *tableau.Branch) []*rule.Target {
	var targets []*rule.Target
	for _, n := range rule.Select(b, rule.Unticked(b, r.match)) {
		if r.exhausted != nil && r.exhausted(b, n) {
			continue
		}
		targets = append(targets, &rule.Target{Rule: r, Branch: b, Nodes: []*tableau.Node{n}})
	}
	return targets
}

func (r *genericRule) Apply(t *rule.Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	return r.apply(tb, t.Branch, t.Nodes[0])
}
