package common

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// ClassicalRules returns the standard bivalent (Smullyan uniform-notation)
// decomposition rules, used directly by CPL/CFOL and, via the
// world-carrying Carry helper, by every classical
// modal logic built on them. Conditional/Biconditional reuse the material
// decomposition, a documented simplification (see the grounding ledger).
func ClassicalRules(h *rule.Helpers) []rule.Rule {
	return []rule.Rule{
		classicalConjunction(),
		classicalNegatedConjunction(h),
		classicalDisjunction(h),
		classicalNegatedDisjunction(),
		classicalConditional(lexicon.MaterialConditional, h),
		classicalNegatedConditional(lexicon.MaterialConditional),
		classicalConditional(lexicon.Conditional, h),
		classicalNegatedConditional(lexicon.Conditional),
		classicalBiconditional(lexicon.MaterialBiconditional, h),
		classicalNegatedBiconditional(lexicon.MaterialBiconditional, h),
		classicalBiconditional(lexicon.Biconditional, h),
		classicalNegatedBiconditional(lexicon.Biconditional, h),
		classicalDoubleNegation(),
		classicalAssertion(),
		classicalNegatedAssertion(),
	}
}

func classicalConjunction() rule.Rule {
	return &genericRule{name: "Conjunction", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, lexicon.Conjunction) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyLinear(tb, b, n, true,
				Carry(n, tableau.SentenceSpec(o.Operands[0])),
				Carry(n, tableau.SentenceSpec(o.Operands[1])))
		}}
}

func classicalNegatedConjunction(h *rule.Helpers) rule.Rule {
	return &genericRule{name: "NegatedConjunction", ticking: true, branching: 1,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, lexicon.Conjunction) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{Carry(n, tableau.SentenceSpec(lexicon.Negate(o.Operands[0])))},
				{Carry(n, tableau.SentenceSpec(lexicon.Negate(o.Operands[1])))},
			})
		}}
}

func classicalDisjunction(h *rule.Helpers) rule.Rule {
	return &genericRule{name: "Disjunction", ticking: true, branching: 1,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, lexicon.Disjunction) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{Carry(n, tableau.SentenceSpec(o.Operands[0]))},
				{Carry(n, tableau.SentenceSpec(o.Operands[1]))},
			})
		}}
}

func classicalNegatedDisjunction() rule.Rule {
	return &genericRule{name: "NegatedDisjunction", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, lexicon.Disjunction) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			return ApplyLinear(tb, b, n, true,
				Carry(n, tableau.SentenceSpec(lexicon.Negate(o.Operands[0]))),
				Carry(n, tableau.SentenceSpec(lexicon.Negate(o.Operands[1]))))
		}}
}

func classicalConditional(op lexicon.Operator, h *rule.Helpers) rule.Rule {
	return &genericRule{name: op.String(), ticking: true, branching: 1,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, op) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{Carry(n, tableau.SentenceSpec(lexicon.Negate(o.Operands[0])))},
				{Carry(n, tableau.SentenceSpec(o.Operands[1]))},
			})
		}}
}

func classicalNegatedConditional(op lexicon.Operator) rule.Rule {
	return &genericRule{name: "Negated" + op.String(), ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, op) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			return ApplyLinear(tb, b, n, true,
				Carry(n, tableau.SentenceSpec(o.Operands[0])),
				Carry(n, tableau.SentenceSpec(lexicon.Negate(o.Operands[1]))))
		}}
}

func classicalBiconditional(op lexicon.Operator, h *rule.Helpers) rule.Rule {
	return &genericRule{name: op.String(), ticking: true, branching: 1,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, op) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			a, c := o.Operands[0], o.Operands[1]
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{Carry(n, tableau.SentenceSpec(a)), Carry(n, tableau.SentenceSpec(c))},
				{Carry(n, tableau.SentenceSpec(lexicon.Negate(a))), Carry(n, tableau.SentenceSpec(lexicon.Negate(c)))},
			})
		}}
}

func classicalNegatedBiconditional(op lexicon.Operator, h *rule.Helpers) rule.Rule {
	return &genericRule{name: "Negated" + op.String(), ticking: true, branching: 1,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, op) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			a, c := o.Operands[0], o.Operands[1]
			return ApplyBranching(tb, b, n, true, h, [][]tableau.NodeSpec{
				{Carry(n, tableau.SentenceSpec(a)), Carry(n, tableau.SentenceSpec(lexicon.Negate(c)))},
				{Carry(n, tableau.SentenceSpec(lexicon.Negate(a))), Carry(n, tableau.SentenceSpec(c))},
			})
		}}
}

func classicalDoubleNegation() rule.Rule {
	return &genericRule{name: "DoubleNegation", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool {
			inner, ok := NegatedOperand(s)
			if !ok {
				return false
			}
			_, ok = NegatedOperand(inner)
			return ok
		}),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			innerInner, _ := NegatedOperand(inner)
			return ApplyLinear(tb, b, n, true, Carry(n, tableau.SentenceSpec(innerInner)))
		}}
}

func classicalAssertion() rule.Rule {
	return &genericRule{name: "Assertion", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, lexicon.Assertion) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			return ApplyLinear(tb, b, n, true, Carry(n, tableau.SentenceSpec(o.Operands[0])))
		}}
}

func classicalNegatedAssertion() rule.Rule {
	return &genericRule{name: "NegatedAssertion", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, lexicon.Assertion) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			return ApplyLinear(tb, b, n, true, Carry(n, tableau.SentenceSpec(lexicon.Negate(o.Operands[0]))))
		}}
}
