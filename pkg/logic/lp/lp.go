// Package lp registers the Logic of Paradox LP: paraconsistent (tolerates
// gluts) but not paracomplete (gaps close a branch).
package lp

import (
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/logic/common"
	"github.com/owings1/pytableaux/pkg/rule"
)

func init() {
	logic.Register(&logic.Logic{
		Name: "LP",
		Meta: logic.Meta{Designation: true, Modal: false,
			Values:           []logic.TruthValue{logic.TrueValue, logic.FalseValue, logic.GlutValue},
			DesignatedValues: []logic.TruthValue{logic.TrueValue, logic.GlutValue}},
		BuildTrunk: common.DesignatedTrunk,
		Model:      common.StrongKleeneModel{LogicName: "LP", Mid: logic.GlutValue},
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
