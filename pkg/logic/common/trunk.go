// Package common holds the generic tableau-construction machinery shared by
// the per-logic packages under pkg/logic/*: trunk builders, the
// designated/undesignated structural decomposition rules most many-valued
// logics share, and table-driven Models for the Kleene and FDE truth
// functions. Per-logic packages supply only their Meta, truth table, and
// closure-rule choice, composing a shared base behavior with small
// per-logic overrides.
package common

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// ClassicalTrunk implements the bivalent refutation trunk: each premise as
// a plain (asserted-true) node, plus the negated conclusion. The tableau
// searches for a model where the premises hold and the conclusion fails;
// all branches closing proves validity.
func ClassicalTrunk(tb *tableau.Tableau, b *tableau.Branch, arg predstore.Argument) {
	for _, p := range arg.Premises {
		mustAppend(tb, b, tableau.SentenceSpec(p))
	}
	mustAppend(tb, b, tableau.SentenceSpec(lexicon.Negate(arg.Conclusion)))
}

// ModalClassicalTrunk is ClassicalTrunk with every node stamped at world 0,
// the seed world every modal frame constraint rule builds outward from.
func ModalClassicalTrunk(tb *tableau.Tableau, b *tableau.Branch, arg predstore.Argument) {
	for _, p := range arg.Premises {
		mustAppend(tb, b, tableau.SentenceSpec(p).AtWorld(0))
	}
	mustAppend(tb, b, tableau.SentenceSpec(lexicon.Negate(arg.Conclusion)).AtWorld(0))
}

// DesignatedTrunk implements the many-valued refutation trunk: each
// premise designated, and the conclusion undesignated. A countermodel
// is an open branch where this holds at w0.
func DesignatedTrunk(tb *tableau.Tableau, b *tableau.Branch, arg predstore.Argument) {
	for _, p := range arg.Premises {
		mustAppend(tb, b, tableau.SentenceSpec(p).Designate(true))
	}
	mustAppend(tb, b, tableau.SentenceSpec(arg.Conclusion).Designate(false))
}

// ModalDesignatedTrunk is DesignatedTrunk with every node stamped at world
// 0, for the many-valued/modal crosses (KFDE, TK3, ... family).
func ModalDesignatedTrunk(tb *tableau.Tableau, b *tableau.Branch, arg predstore.Argument) {
	for _, p := range arg.Premises {
		mustAppend(tb, b, tableau.SentenceSpec(p).Designate(true).AtWorld(0))
	}
	mustAppend(tb, b, tableau.SentenceSpec(arg.Conclusion).Designate(false).AtWorld(0))
}

func mustAppend(tb *tableau.Tableau, b *tableau.Branch, spec tableau.NodeSpec) {
	if _, err := tb.AppendNode(b, spec); err != nil {
		// The trunk only ever appends to the tableau's fresh root branch,
		// which cannot yet be closed, so AppendNode cannot fail here.
		panic(err)
	}
}
