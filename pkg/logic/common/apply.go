package common

import (
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// ApplyLinear appends every spec to branch and ticks source if ticking,
// returning the single resulting branch — the common case for
// non-branching decomposition rules.
func ApplyLinear(tb *tableau.Tableau, branch *tableau.Branch, source *tableau.Node, ticking bool, specs ...tableau.NodeSpec) ([]*tableau.Branch, error) {
	for _, spec := range specs {
		if _, err := tb.AppendNode(branch, spec); err != nil {
			return nil, err
		}
	}
	if ticking {
		if err := tb.Tick(branch, source); err != nil {
			return nil, err
		}
	}
	return []*tableau.Branch{branch}, nil
}

// ApplyBranching forks branch once per alternative (the first alternative
// reuses branch itself), appends that alternative's specs to its branch,
// and ticks source on every resulting branch. h's access/firing caches are
// carried over to each forked sibling via Helpers.InheritBranch, so a
// Universal/Necessity application already recorded on branch is not
// replayed on its children.
func ApplyBranching(tb *tableau.Tableau, branch *tableau.Branch, source *tableau.Node, ticking bool, h *rule.Helpers, alternatives [][]tableau.NodeSpec) ([]*tableau.Branch, error) {
	out := make([]*tableau.Branch, 0, len(alternatives))
	for i, alt := range alternatives {
		target := branch
		if i > 0 {
			nb, err := tb.NewBranch(branch)
			if err != nil {
				return nil, err
			}
			h.InheritBranch(branch.ID(), nb.ID())
			target = nb
		}
		for _, spec := range alt {
			if _, err := tb.AppendNode(target, spec); err != nil {
				return nil, err
			}
		}
		if ticking {
			if err := tb.Tick(target, source); err != nil {
				return nil, err
			}
		}
		out = append(out, target)
	}
	return out, nil
}
