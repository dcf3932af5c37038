// Package rm3 registers RM3, a paraconsistent relevance-logic extension of
// LP. Its distinguishing conditional strengthening is not modeled exactly;
// see the grounding ledger for the documented
// simplification shared by this corpus's Kleene-family packages.
package rm3

import (
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/logic/common"
	"github.com/owings1/pytableaux/pkg/rule"
)

func init() {
	logic.Register(&logic.Logic{
		Name: "RM3",
		Meta: logic.Meta{Designation: true, Modal: false,
			Values:           []logic.TruthValue{logic.TrueValue, logic.FalseValue, logic.GlutValue},
			DesignatedValues: []logic.TruthValue{logic.TrueValue, logic.GlutValue}},
		BuildTrunk: common.DesignatedTrunk,
		Model:      common.StrongKleeneModel{LogicName: "RM3", Mid: logic.GlutValue},
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
