// Package modal composes a base logic (classical or many-valued) with a
// frame-constraint mixin to produce the pure modal logics K/D/T/S4/S5
// (built on CPL) and crosses like KFDE, TK3, S5LP (built on the
// corresponding many-valued base). The composition recipe reuses the base
// logic's Model and structural rules unchanged, adds the
// Possibility/Necessity operator rules and their negated De Morgan duals,
// plus the frame's access-relation rules, and swaps the trunk builder for
// its world-stamping counterpart.
package modal

import (
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/logic/common"
	"github.com/owings1/pytableaux/pkg/rule"

	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	_ "github.com/owings1/pytableaux/pkg/logic/fde"
	_ "github.com/owings1/pytableaux/pkg/logic/k3"
	_ "github.com/owings1/pytableaux/pkg/logic/lp"
	_ "github.com/owings1/pytableaux/pkg/logic/mh"
	_ "github.com/owings1/pytableaux/pkg/logic/nh"
	_ "github.com/owings1/pytableaux/pkg/logic/rm3"
)

// Frame identifies one of the named access-relation constraints.
type Frame int

const (
	FrameK Frame = iota
	FrameD
	FrameT
	FrameS4
	FrameS5
)

func (f Frame) prefix() string {
	switch f {
	case FrameD:
		return "D"
	case FrameT:
		return "T"
	case FrameS4:
		return "S4"
	case FrameS5:
		return "S5"
	default:
		return "K"
	}
}

func (f Frame) constraintNames() []string {
	switch f {
	case FrameD:
		return []string{"serial"}
	case FrameT:
		return []string{"reflexive"}
	case FrameS4:
		return []string{"reflexive", "transitive"}
	case FrameS5:
		return []string{"reflexive", "transitive", "symmetric"}
	default:
		return nil
	}
}

// frameRules returns the access-relation rules the frame adds, fresh per
// build since they close over the build's *rule.Helpers.
func (f Frame) frameRules(h *rule.Helpers) []rule.Rule {
	switch f {
	case FrameD:
		return []rule.Rule{common.Serial(h)}
	case FrameT:
		return []rule.Rule{common.Reflexive(h)}
	case FrameS4:
		return []rule.Rule{common.Reflexive(h), common.Transitive(h)}
	case FrameS5:
		return []rule.Rule{common.Reflexive(h), common.Transitive(h), common.Symmetric(h)}
	default:
		return nil
	}
}

// Compose builds the modal variant of base under frame f, named name, and
// registers it. base's Model and its structural/quantifier rule groups are
// reused verbatim: the same decomposition rules serve a modal logic once
// every appended node is stamped with its source's world, via
// common.Carry, which every rule in pkg/logic/common already applies.
func Compose(name string, base *logic.Logic, f Frame) *logic.Logic {
	meta := base.Meta
	meta.Modal = true
	meta.AccessConstraints = f.constraintNames()

	trunk := common.ModalClassicalTrunk
	if base.Meta.Designation {
		trunk = common.ModalDesignatedTrunk
	}

	l := &logic.Logic{
		Name:       name,
		Meta:       meta,
		BuildTrunk: trunk,
		Model:      base.Model,
		Rules: func(h *rule.Helpers) *rule.Root {
			baseRoot := base.Rules(h)
			groups := make([]*rule.Group, 0, len(baseRoot.Groups)+2)
			groups = append(groups, baseRoot.Groups...)
			groups = append(groups, rule.NewGroup("modal operator rules",
				common.Possibility(), common.Necessity(h),
				common.NegatedPossibility(), common.NegatedNecessity()))
			if fr := f.frameRules(h); len(fr) > 0 {
				groups = append(groups, rule.NewGroup("frame constraint rules", fr...))
			}
			return rule.NewRoot(groups...)
		},
	}
	logic.Register(l)
	return l
}

// crossName is the naming convention: the frame prefix alone for the pure
// modal logics over CPL ("K", "T", "S5", ...), and prefix+baseName for
// every many-valued cross ("KFDE", "TK3", "S5LP").
func crossName(base string, f Frame) string {
	if base == "CPL" {
		return f.prefix()
	}
	return f.prefix() + base
}

var frames = []Frame{FrameK, FrameD, FrameT, FrameS4, FrameS5}

func init() {
	for _, baseName := range []string{"CPL", "FDE", "K3", "LP", "RM3", "MH", "NH"} {
		base := logic.MustGet(baseName)
		for _, f := range frames {
			Compose(crossName(baseName, f), base, f)
		}
	}
}
