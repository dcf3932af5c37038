package rule_test

import (
	"testing"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newT() *tableau.Tableau {
	return tableau.New(predstore.Argument{}, "CPL")
}

func TestClassicalClosureFindsContradiction(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	a := lexicon.Atomic{Index: 0}
	_, err := tb.AppendNode(b, tableau.SentenceSpec(a))
	require.NoError(t, err)
	_, err = tb.AppendNode(b, tableau.SentenceSpec(lexicon.Negate(a)))
	require.NoError(t, err)

	targets := rule.ClassicalClosure{}.SearchTargets(b)
	require.Len(t, targets, 1)

	branches, err := targets[0].Rule.Apply(targets[0], tb)
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.True(t, branches[0].Closed())
}

func TestClassicalClosureIgnoresDifferentWorlds(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	a := lexicon.Atomic{Index: 0}
	_, err := tb.AppendNode(b, tableau.SentenceSpec(a).AtWorld(0))
	require.NoError(t, err)
	_, err = tb.AppendNode(b, tableau.SentenceSpec(lexicon.Negate(a)).AtWorld(1))
	require.NoError(t, err)

	assert.Empty(t, rule.ClassicalClosure{}.SearchTargets(b))
}

func TestDesignationClosure(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	a := lexicon.Atomic{Index: 0}
	_, err := tb.AppendNode(b, tableau.SentenceSpec(a).Designate(true))
	require.NoError(t, err)
	_, err = tb.AppendNode(b, tableau.SentenceSpec(a).Designate(false))
	require.NoError(t, err)

	targets := rule.DesignationClosure{}.SearchTargets(b)
	require.Len(t, targets, 1)
}

func TestGlutAndGapClosureAreDistinct(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	a := lexicon.Atomic{Index: 0}
	_, err := tb.AppendNode(b, tableau.SentenceSpec(a).Designate(true))
	require.NoError(t, err)
	_, err = tb.AppendNode(b, tableau.SentenceSpec(lexicon.Negate(a)).Designate(true))
	require.NoError(t, err)

	assert.Len(t, rule.GlutClosure{}.SearchTargets(b), 1)
	assert.Empty(t, rule.GapClosure{}.SearchTargets(b))
}

func TestHelpersFiringBookkeepingPreventsRefire(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	n, err := tb.AppendNode(b, tableau.SentenceSpec(lexicon.Atomic{Index: 0}))
	require.NoError(t, err)
	c := lexicon.Constant{Index: 0}

	h := rule.NewHelpers()
	assert.False(t, h.HasFired(b, n, c))
	h.MarkFired(b, n, c)
	assert.True(t, h.HasFired(b, n, c))
}

func TestHelpersInheritBranchCopiesFromSource(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	n, err := tb.AppendNode(b, tableau.SentenceSpec(lexicon.Atomic{Index: 0}))
	require.NoError(t, err)
	c := lexicon.Constant{Index: 0}

	h := rule.NewHelpers()
	h.MarkFired(b, n, c)

	sibling, err := tb.NewBranch(b)
	require.NoError(t, err)
	h.InheritBranch(b.ID(), sibling.ID())
	assert.True(t, h.HasFired(sibling, n, c))

	other := lexicon.Constant{Index: 1}
	h.MarkFired(sibling, n, other)
	assert.False(t, h.HasFired(b, n, other), "marking on the sibling must not leak back to the source")
}

func TestAccessibleWorldsCaches(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	_, err := tb.AppendNode(b, tableau.AccessSpec(0, 1))
	require.NoError(t, err)

	h := rule.NewHelpers()
	assert.Equal(t, []int{1}, h.AccessibleWorlds(b, 0))

	h.InvalidateAccess(b, 0)
	_, err = tb.AppendNode(b, tableau.AccessSpec(0, 2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, h.AccessibleWorlds(b, 0))
}

func TestSelectWithFilters(t *testing.T) {
	tb := newT()
	b := tb.RootBranch()
	a0 := lexicon.Atomic{Index: 0}
	n0, err := tb.AppendNode(b, tableau.SentenceSpec(a0).Designate(true))
	require.NoError(t, err)
	_, err = tb.AppendNode(b, tableau.SentenceSpec(lexicon.Atomic{Index: 1}).Designate(false))
	require.NoError(t, err)

	got := rule.Select(b, rule.Designation(true))
	require.Len(t, got, 1)
	assert.Equal(t, n0.ID(), got[0].ID())
}

func TestBranchingComplexity(t *testing.T) {
	a, bb := lexicon.Atomic{Index: 0}, lexicon.Atomic{Index: 1}
	disj, err := lexicon.NewOperated(lexicon.Disjunction, []lexicon.Sentence{a, bb})
	require.NoError(t, err)
	conj, err := lexicon.NewOperated(lexicon.Conjunction, []lexicon.Sentence{a, bb})
	require.NoError(t, err)

	assert.Equal(t, 1, rule.BranchingComplexity(disj))
	assert.Equal(t, 0, rule.BranchingComplexity(conj))
}
