// Package go3 registers GO, the Gödel-Object logic pairing. Like g3, its
// distinctive conditional is not modeled exactly; it composes the same
// contagious-N weak-Kleene base as k3w. See the grounding ledger for
// the documented simplification.
package go3

import (
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/logic/common"
	"github.com/owings1/pytableaux/pkg/rule"
)

func init() {
	logic.Register(&logic.Logic{
		Name: "GO",
		Meta: logic.Meta{Designation: true, Modal: false,
			Values:           []logic.TruthValue{logic.TrueValue, logic.FalseValue, logic.GapValue},
			DesignatedValues: []logic.TruthValue{logic.TrueValue}},
		BuildTrunk: common.DesignatedTrunk,
		Model:      common.WeakKleeneModel{LogicName: "GO", Mid: logic.GapValue},
		Rules: func(h *rule.Helpers) *rule.Root {
			nonBranching, branching := common.SplitByBranching(common.DesignatedRules(h))
			return rule.NewRoot(
				rule.NewGroup("closure", rule.DesignationClosure{}, rule.GlutClosure{}),
				rule.NewGroup("non-branching operator rules", nonBranching...),
				rule.NewGroup("branching operator rules", branching...),
				rule.NewGroup("quantifier rules",
					common.DesignatedExistential(h, true), common.DesignatedExistential(h, false),
					common.DesignatedUniversal(h, true), common.DesignatedUniversal(h, false)),
			)
		},
	})
}
