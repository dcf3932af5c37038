// Package cpl registers Classical Propositional Logic.
package cpl

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/logic/common"
	"github.com/owings1/pytableaux/pkg/rule"
)

// Model implements bivalent truth-functions directly (no table lookup
// needed: every classical connective reduces to Go bool operators).
type Model struct{}

func (Model) TruthFunction(op lexicon.Operator, vals ...logic.TruthValue) logic.TruthValue {
	b := func(v logic.TruthValue) bool { return v == logic.TrueValue }
	of := func(x bool) logic.TruthValue {
		if x {
			return logic.TrueValue
		}
		return logic.FalseValue
	}
	switch op {
	case lexicon.Negation:
		return of(!b(vals[0]))
	case lexicon.Assertion:
		return vals[0]
	case lexicon.Conjunction:
		return of(b(vals[0]) && b(vals[1]))
	case lexicon.Disjunction:
		return of(b(vals[0]) || b(vals[1]))
	case lexicon.MaterialConditional, lexicon.Conditional:
		return of(!b(vals[0]) || b(vals[1]))
	case lexicon.MaterialBiconditional, lexicon.Biconditional:
		return of(b(vals[0]) == b(vals[1]))
	}
	return logic.FalseValue
}

func (Model) Quantify(q lexicon.Quantifier, values []logic.TruthValue) logic.TruthValue {
	want := logic.TrueValue
	if q == lexicon.Universal {
		want = logic.FalseValue
	}
	for _, v := range values {
		if v != want {
			continue
		}
		if q == lexicon.Existential {
			return logic.TrueValue
		}
		return logic.FalseValue
	}
	if q == lexicon.Existential {
		return logic.FalseValue
	}
	return logic.TrueValue
}

func init() {
	logic.Register(&logic.Logic{
		Name: "CPL",
		Meta: logic.Meta{Designation: false, Modal: false,
			Values:           []logic.TruthValue{logic.TrueValue, logic.FalseValue},
			DesignatedValues: []logic.TruthValue{logic.TrueValue}},
		BuildTrunk: common.ClassicalTrunk,
		Model:      Model{},
		Rules: func(h *rule.Helpers) *rule.Root {
			nonBranching, branching := common.SplitByBranching(common.ClassicalRules(h))
			return rule.NewRoot(
				rule.NewGroup("closure", rule.ClassicalClosure{}),
				rule.NewGroup("non-branching operator rules", nonBranching...),
				rule.NewGroup("branching operator rules", branching...),
			)
		},
	})

	// CFOL is CPL plus quantifiers over a first-order signature: same
	// connective rules and closure, with an existential-before-universal
	// quantifier group, in declared rule-group order.
	logic.Register(&logic.Logic{
		Name: "CFOL",
		Meta: logic.Meta{Designation: false, Modal: false,
			Values:           []logic.TruthValue{logic.TrueValue, logic.FalseValue},
			DesignatedValues: []logic.TruthValue{logic.TrueValue}},
		BuildTrunk: common.ClassicalTrunk,
		Model:      Model{},
		Rules: func(h *rule.Helpers) *rule.Root {
			nonBranching, branching := common.SplitByBranching(common.ClassicalRules(h))
			return rule.NewRoot(
				rule.NewGroup("closure", rule.ClassicalClosure{}),
				rule.NewGroup("non-branching operator rules", nonBranching...),
				rule.NewGroup("branching operator rules", branching...),
				rule.NewGroup("quantifier rules", common.ExistentialClassical(h), common.UniversalClassical(h)),
			)
		},
	})
}
