package common

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// DesignatedRules returns the designated/undesignated structural
// decomposition rules shared by every designation-based many-valued logic
// in this corpus (FDE and its Kleene-family descendants). The +/- sign
// rules for conjunction/disjunction distribute identically regardless of
// how many truth values the logic actually uses, so FDE, K3, LP, RM3, MH,
// and NH share this one rule set; they differ only in Meta.Values,
// Meta.DesignatedValues, and which closure rule(s) they register (see the
// grounding ledger for the weak-Kleene logics' documented simplification).
func DesignatedRules(h *rule.Helpers) []rule.Rule {
	return []rule.Rule{
		designatedConjunction(true, h), designatedConjunction(false, h),
		designatedDisjunction(true, h), designatedDisjunction(false, h),
		designatedConditional(lexicon.MaterialConditional, true, h), designatedConditional(lexicon.MaterialConditional, false, h),
		designatedConditional(lexicon.Conditional, true, h), designatedConditional(lexicon.Conditional, false, h),
		designatedBiconditional(lexicon.MaterialBiconditional, true, h), designatedBiconditional(lexicon.MaterialBiconditional, false, h),
		designatedBiconditional(lexicon.Biconditional, true, h), designatedBiconditional(lexicon.Biconditional, false, h),
		designatedDoubleNegation(true), designatedDoubleNegation(false),
		designatedNegatedConjunction(true, h), designatedNegatedConjunction(false, h),
		designatedNegatedDisjunction(true, h), designatedNegatedDisjunction(false, h),
		designatedNegatedConditional(lexicon.MaterialConditional, true, h), designatedNegatedConditional(lexicon.MaterialConditional, false, h),
		designatedNegatedConditional(lexicon.Conditional, true, h), designatedNegatedConditional(lexicon.Conditional, false, h),
		designatedAssertion(true), designatedAssertion(false),
	}
}

func designatedNegatedConditional(op lexicon.Operator, d bool, h *rule.Helpers) rule.Rule {
	// ¬(A>B) ≡ A&¬B.
	name := "DesignatedNegated" + op.String()
	branching, apply := 0, func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
		inner, _ := NegatedOperand(n.Sentence)
		o, _ := AsOperated(inner)
		return ApplyLinear(tb, b, n, true, sentSpec(n, o.Operands[0], true), sentSpec(n, lexicon.Negate(o.Operands[1]), true))
	}
	if !d {
		name, branching = "UndesignatedNegated"+op.String(), 1
		apply = func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{sentSpec(n, o.Operands[0], false)},
				{sentSpec(n, lexicon.Negate(o.Operands[1]), false)},
			})
		}
	}
	return &genericRule{name: name, ticking: true, branching: branching,
		match: matchNegatedDesignated(op, d), apply: apply}
}

func sentSpec(n *tableau.Node, s lexicon.Sentence, designated bool) tableau.NodeSpec {
	return Carry(n, tableau.SentenceSpec(s).Designate(designated))
}

func matchDesignated(op lexicon.Operator, designated bool) rule.NodeFilter {
	return rule.And(rule.Designation(designated), rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, op) }))
}

func matchNegatedDesignated(op lexicon.Operator, designated bool) rule.NodeFilter {
	return rule.And(rule.Designation(designated), rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, op) }))
}

func designatedConjunction(d bool, h *rule.Helpers) rule.Rule {
	name := "DesignatedConjunction"
	branching, apply := 0, func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
		o, _ := AsOperated(n.Sentence)
		return ApplyLinear(tb, b, n, true, sentSpec(n, o.Operands[0], true), sentSpec(n, o.Operands[1], true))
	}
	if !d {
		name, branching = "UndesignatedConjunction", 1
		apply = func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{sentSpec(n, o.Operands[0], false)},
				{sentSpec(n, o.Operands[1], false)},
			})
		}
	}
	return &genericRule{name: name, ticking: true, branching: branching,
		match: matchDesignated(lexicon.Conjunction, d), apply: apply}
}

func designatedDisjunction(d bool, h *rule.Helpers) rule.Rule {
	name := "DesignatedDisjunction"
	branching, apply := 1, func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
		o, _ := AsOperated(n.Sentence)
		return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
			{sentSpec(n, o.Operands[0], true)},
			{sentSpec(n, o.Operands[1], true)},
		})
	}
	if !d {
		name, branching = "UndesignatedDisjunction", 0
		apply = func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyLinear(tb, b, n, true, sentSpec(n, o.Operands[0], false), sentSpec(n, o.Operands[1], false))
		}
	}
	return &genericRule{name: name, ticking: true, branching: branching,
		match: matchDesignated(lexicon.Disjunction, d), apply: apply}
}

func designatedNegatedConjunction(d bool, h *rule.Helpers) rule.Rule {
	// ¬(A&B) ≡ ¬A∨¬B, so its designated/undesignated decomposition mirrors
	// disjunction's, applied to the negated operands.
	name := "DesignatedNegatedConjunction"
	branching, apply := 1, func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
		inner, _ := NegatedOperand(n.Sentence)
		o, _ := AsOperated(inner)
		return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
			{sentSpec(n, lexicon.Negate(o.Operands[0]), true)},
			{sentSpec(n, lexicon.Negate(o.Operands[1]), true)},
		})
	}
	if !d {
		name, branching = "UndesignatedNegatedConjunction", 0
		apply = func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			return ApplyLinear(tb, b, n, true,
				sentSpec(n, lexicon.Negate(o.Operands[0]), false),
				sentSpec(n, lexicon.Negate(o.Operands[1]), false))
		}
	}
	return &genericRule{name: name, ticking: true, branching: branching,
		match: matchNegatedDesignated(lexicon.Conjunction, d), apply: apply}
}

func designatedNegatedDisjunction(d bool, h *rule.Helpers) rule.Rule {
	// ¬(AvB) ≡ ¬A&¬B, mirroring conjunction's decomposition.
	name := "DesignatedNegatedDisjunction"
	branching, apply := 0, func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
		inner, _ := NegatedOperand(n.Sentence)
		o, _ := AsOperated(inner)
		return ApplyLinear(tb, b, n, true,
			sentSpec(n, lexicon.Negate(o.Operands[0]), true),
			sentSpec(n, lexicon.Negate(o.Operands[1]), true))
	}
	if !d {
		name, branching = "UndesignatedNegatedDisjunction", 1
		apply = func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{sentSpec(n, lexicon.Negate(o.Operands[0]), false)},
				{sentSpec(n, lexicon.Negate(o.Operands[1]), false)},
			})
		}
	}
	return &genericRule{name: name, ticking: true, branching: branching,
		match: matchNegatedDesignated(lexicon.Disjunction, d), apply: apply}
}

func designatedConditional(op lexicon.Operator, d bool, h *rule.Helpers) rule.Rule {
	// A>B ≡ ¬A∨B.
	name := "Designated" + op.String()
	branching, apply := 1, func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
		o, _ := AsOperated(n.Sentence)
		return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
			{sentSpec(n, lexicon.Negate(o.Operands[0]), true)},
			{sentSpec(n, o.Operands[1], true)},
		})
	}
	if !d {
		name, branching = "Undesignated"+op.String(), 0
		apply = func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyLinear(tb, b, n, true, sentSpec(n, lexicon.Negate(o.Operands[0]), false), sentSpec(n, o.Operands[1], false))
		}
	}
	return &genericRule{name: name, ticking: true, branching: branching,
		match: matchDesignated(op, d), apply: apply}
}

func designatedBiconditional(op lexicon.Operator, d bool, h *rule.Helpers) rule.Rule {
	name := "Designated" + op.String()
	branching, apply := 1, func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
		o, _ := AsOperated(n.Sentence)
		a, c := o.Operands[0], o.Operands[1]
		return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
			{sentSpec(n, a, true), sentSpec(n, c, true)},
			{sentSpec(n, a, false), sentSpec(n, c, false)},
		})
	}
	if !d {
		name = "Undesignated" + op.String()
		apply = func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			a, c := o.Operands[0], o.Operands[1]
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{sentSpec(n, a, true), sentSpec(n, c, false)},
				{sentSpec(n, a, false), sentSpec(n, c, true)},
			})
		}
	}
	return &genericRule{name: name, ticking: true, branching: branching,
		match: matchDesignated(op, d), apply: apply}
}

func designatedDoubleNegation(d bool) rule.Rule {
	name := "DesignatedDoubleNegation"
	if !d {
		name = "UndesignatedDoubleNegation"
	}
	return &genericRule{name: name, ticking: true, branching: 0,
		match: rule.And(rule.Designation(d), rule.SentenceFilter(func(s lexicon.Sentence) bool {
			inner, ok := NegatedOperand(s)
			if !ok {
				return false
			}
			_, ok = NegatedOperand(inner)
			return ok
		})),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			innerInner, _ := NegatedOperand(inner)
			return ApplyLinear(tb, b, n, true, sentSpec(n, innerInner, d))
		}}
}

func designatedAssertion(d bool) rule.Rule {
	name := "DesignatedAssertion"
	if !d {
		name = "UndesignatedAssertion"
	}
	return &genericRule{name: name, ticking: true, branching: 0,
		match: matchDesignated(lexicon.Assertion, d),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyLinear(tb, b, n, true, sentSpec(n, o.Operands[0], d))
		}}
}
