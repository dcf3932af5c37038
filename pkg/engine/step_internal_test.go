package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// stubRule is a fixed-score, single-candidate rule for exercising
// applyBestTarget's group/rank selection in isolation from any real
// decomposition logic.
type stubRule struct {
	rule.BaseRule
	name  string
	score int
}

func (r *stubRule) Name() string { return r.name }
func (r *stubRule) SearchTargets(b *tableau.Branch) []*rule.Target {
	return []*rule.Target{{Rule: r, Branch: b}}
}
func (r *stubRule) ScoreCandidate(*rule.Target) int { return r.score }
func (r *stubRule) Apply(t *rule.Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	return []*tableau.Branch{t.Branch}, nil
}
func (r *stubRule) Branching() int { return 0 }
func (r *stubRule) Ticking() bool  { return false }

func TestApplyBestTargetGroupOptimOnStopsAtFirstNonEmptyGroup(t *testing.T) {
	tb := tableau.New(predstore.Argument{}, "CPL")
	groups := []*rule.Group{
		rule.NewGroup("high-priority-low-score", &stubRule{name: "A", score: 0}),
		rule.NewGroup("lower-priority-high-score", &stubRule{name: "B", score: 5}),
	}

	res, err := applyBestTarget(tb, groups, Options{IsGroupOptim: true, IsRankOptim: true})
	require.NoError(t, err)
	assert.Equal(t, "A", res.Rule, "group optimization commits to the first non-empty group regardless of a later group's score")
}

func TestApplyBestTargetGroupOptimOffPoolsAcrossGroups(t *testing.T) {
	tb := tableau.New(predstore.Argument{}, "CPL")
	groups := []*rule.Group{
		rule.NewGroup("high-priority-low-score", &stubRule{name: "A", score: 0}),
		rule.NewGroup("lower-priority-high-score", &stubRule{name: "B", score: 5}),
	}

	res, err := applyBestTarget(tb, groups, Options{IsGroupOptim: false, IsRankOptim: true})
	require.NoError(t, err)
	assert.Equal(t, "B", res.Rule, "with group optimization off, rank optimization picks the best-scored candidate across every group")
}
