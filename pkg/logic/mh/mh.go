// Package mh registers MH, a paracomplete weak-Kleene logic. Like K3, it
// closes on gluts; unlike K3 it uses the weak (contagious) truth tables.
package mh

import (
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/logic/common"
	"github.com/owings1/pytableaux/pkg/rule"
)

func init() {
	logic.Register(&logic.Logic{
		Name: "MH",
		Meta: logic.Meta{Designation: true, Modal: false,
			Values:           []logic.TruthValue{logic.TrueValue, logic.FalseValue, logic.GapValue},
			DesignatedValues: []logic.TruthValue{logic.TrueValue}},
		BuildTrunk: common.DesignatedTrunk,
		Model:      common.WeakKleeneModel{LogicName: "MH", Mid: logic.GapValue},
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
