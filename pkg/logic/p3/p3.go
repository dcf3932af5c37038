// Package p3 registers P3, a paraconsistent three-valued logic pairing
// with the glut value. It closes on gaps instead of gluts, mirroring
// lp's closure choice over a weak-Kleene base whose contagious value is B.
package p3

import (
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/logic/common"
	"github.com/owings1/pytableaux/pkg/rule"
)

func init() {
	logic.Register(&logic.Logic{
		Name: "P3",
		Meta: logic.Meta{Designation: true, Modal: false,
			Values:           []logic.TruthValue{logic.TrueValue, logic.FalseValue, logic.GlutValue},
			DesignatedValues: []logic.TruthValue{logic.TrueValue, logic.GlutValue}},
		BuildTrunk: common.DesignatedTrunk,
		Model:      common.WeakKleeneModel{LogicName: "P3", Mid: logic.GlutValue},
		Rules: func(h *rule.Helpers) *rule.Root {
			nonBranching, branching := common.SplitByBranching(common.DesignatedRules(h))
			return rule.NewRoot(
				rule.NewGroup("closure", rule.DesignationClosure{}, rule.GapClosure{}),
				rule.NewGroup("non-branching operator rules", nonBranching...),
				rule.NewGroup("branching operator rules", branching...),
				rule.NewGroup("quantifier rules",
					common.DesignatedExistential(h, true), common.DesignatedExistential(h, false),
					common.DesignatedUniversal(h, true), common.DesignatedUniversal(h, false)),
			)
		},
	})
}
