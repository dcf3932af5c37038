package common

import "github.com/owings1/pytableaux/pkg/rule"

// SplitByBranching partitions rules into non-branching and branching
// groups, preserving relative order within each.
func SplitByBranching(rules []rule.Rule) (nonBranching, branching []rule.Rule) {
	for _, r := range rules {
		if r.Branching() == 0 {
			nonBranching = append(nonBranching, r)
		} else {
			branching = append(branching, r)
		}
	}
	return
}
