package common

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// fireSentinel is the sentinel constant Helpers.HasFired is keyed on for
// rules that fire once per node rather than once per (node, constant) — the
// Existential rule applies once per quantified sentence and once per
// branch.
var fireSentinel = lexicon.Constant{Index: -1}

// ExistentialClassical handles the bivalent case: a true ∃xA(x)
// introduces one fresh constant and asserts A(x/c), non-ticking, applying
// once per quantified sentence and once per branch.
func ExistentialClassical(h *rule.Helpers) rule.Rule {
	return quantifierRule("Existential", lexicon.Existential, existentialExhausted(h),
		func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node, q lexicon.Quantified) ([]*tableau.Branch, error) {
			h.MarkFired(b, n, fireSentinel)
			c := tb.FreshConstant(b)
			instance := lexicon.Substitute(q.Body, q.Var, c)
			return ApplyLinear(tb, b, n, false, Carry(n, tableau.SentenceSpec(instance)))
		})
}

// UniversalClassical introduces every constant on the branch for a true
// ∀xA(x), idempotent, using a per (node, constant) bookkeeping to prevent
// refiring.
func UniversalClassical(h *rule.Helpers) rule.Rule {
	return quantifierRule("Universal", lexicon.Universal, universalExhausted(h),
		func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node, q lexicon.Quantified) ([]*tableau.Branch, error) {
			consts := b.Constants()
			if len(consts) == 0 {
				consts = []lexicon.Constant{tb.FreshConstant(b)}
			}
			var specs []tableau.NodeSpec
			for _, c := range consts {
				if h.HasFired(b, n, c) {
					continue
				}
				h.MarkFired(b, n, c)
				instance := lexicon.Substitute(q.Body, q.Var, c)
				specs = append(specs, Carry(n, tableau.SentenceSpec(instance)))
			}
			return ApplyLinear(tb, b, n, false, specs...)
		})
}

// DesignatedExistential and DesignatedUniversal are the many-valued
// analogues, propagating the designation marker (along with the source
// node's world, if any) onto every instantiated node.
func DesignatedExistential(h *rule.Helpers, designated bool) rule.Rule {
	return quantifierRuleDesignated("Existential", lexicon.Existential, designated, existentialExhausted(h),
		func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node, q lexicon.Quantified) ([]*tableau.Branch, error) {
			h.MarkFired(b, n, fireSentinel)
			c := tb.FreshConstant(b)
			instance := lexicon.Substitute(q.Body, q.Var, c)
			return ApplyLinear(tb, b, n, false, sentSpec(n, instance, designated))
		})
}

func DesignatedUniversal(h *rule.Helpers, designated bool) rule.Rule {
	return quantifierRuleDesignated("Universal", lexicon.Universal, designated, universalExhausted(h),
		func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node, q lexicon.Quantified) ([]*tableau.Branch, error) {
			consts := b.Constants()
			if len(consts) == 0 {
				consts = []lexicon.Constant{tb.FreshConstant(b)}
			}
			var specs []tableau.NodeSpec
			for _, c := range consts {
				if h.HasFired(b, n, c) {
					continue
				}
				h.MarkFired(b, n, c)
				instance := lexicon.Substitute(q.Body, q.Var, c)
				specs = append(specs, sentSpec(n, instance, designated))
			}
			return ApplyLinear(tb, b, n, false, specs...)
		})
}

// existentialExhausted reports whether the Existential rule has already
// fired for n, its only bookkeeping key: once fired it never has further
// work, so SearchTargets must drop it rather than re-offer a no-op target
// forever.
func existentialExhausted(h *rule.Helpers) func(b *tableau.Branch, n *tableau.Node) bool {
	return func(b *tableau.Branch, n *tableau.Node) bool {
		return h.HasFired(b, n, fireSentinel)
	}
}

// universalExhausted reports whether every constant currently on b has
// already fired for n. A branch with no constants yet is never exhausted,
// mirroring the fresh-constant fallback in UniversalClassical/
// DesignatedUniversal's apply; a new constant appearing later on the
// branch (from an Existential elsewhere) makes the node a candidate again.
func universalExhausted(h *rule.Helpers) func(b *tableau.Branch, n *tableau.Node) bool {
	return func(b *tableau.Branch, n *tableau.Node) bool {
		consts := b.Constants()
		if len(consts) == 0 {
			return false
		}
		for _, c := range consts {
			if !h.HasFired(b, n, c) {
				return false
			}
		}
		return true
	}
}

func quantifierRule(name string, quant lexicon.Quantifier,
	exhausted func(b *tableau.Branch, n *tableau.Node) bool,
	apply func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node, q lexicon.Quantified) ([]*tableau.Branch, error)) rule.Rule {
	return &genericRule{name: name, ticking: false, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool {
			q, ok := AsQuantified(s)
			return ok && q.Quant == quant
		}),
		exhausted: exhausted,
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			q, _ := AsQuantified(n.Sentence)
			return apply(tb, b, n, q)
		}}
}

func quantifierRuleDesignated(name string, quant lexicon.Quantifier, designated bool,
	exhausted func(b *tableau.Branch, n *tableau.Node) bool,
	apply func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node, q lexicon.Quantified) ([]*tableau.Branch, error)) rule.Rule {
	label := "Designated" + name
	if !designated {
		label = "Undesignated" + name
	}
	return &genericRule{name: label, ticking: false, branching: 0,
		match: rule.And(rule.Designation(designated), rule.SentenceFilter(func(s lexicon.Sentence) bool {
			q, ok := AsQuantified(s)
			return ok && q.Quant == quant
		})),
		exhausted: exhausted,
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			q, _ := AsQuantified(n.Sentence)
			return apply(tb, b, n, q)
		}}
}
