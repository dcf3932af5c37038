package tableau_test

import (
	"testing"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newT() *tableau.Tableau {
	return tableau.New(predstore.Argument{}, "CPL")
}

func TestAppendNodeTracksConstants(t *testing.T) {
	tb := newT()
	root := tb.RootBranch()

	pred, err := lexicon.NewPredicate(0, 0, 1)
	require.NoError(t, err)
	s, err := lexicon.NewPredicated(pred, []lexicon.Parameter{lexicon.Constant{Index: 0}})
	require.NoError(t, err)

	_, err = tb.AppendNode(root, tableau.SentenceSpec(s))
	require.NoError(t, err)

	assert.True(t, root.HasConstant(lexicon.Constant{Index: 0}))
	assert.Equal(t, lexicon.Constant{Index: 1}, tb.FreshConstant(root))
}

func TestTickIsMonotoneAndPerBranch(t *testing.T) {
	tb := newT()
	root := tb.RootBranch()
	n, err := tb.AppendNode(root, tableau.SentenceSpec(lexicon.Atomic{Index: 0}))
	require.NoError(t, err)

	assert.False(t, root.Ticked(n))
	require.NoError(t, tb.Tick(root, n))
	assert.True(t, root.Ticked(n))
	require.NoError(t, tb.Tick(root, n)) // idempotent, not an error

	child, err := tb.NewBranch(root)
	require.NoError(t, err)
	assert.True(t, child.Ticked(n), "cloned branch inherits ticked state")
}

func TestNewBranchIsIndependentAfterFork(t *testing.T) {
	tb := newT()
	root := tb.RootBranch()
	_, err := tb.AppendNode(root, tableau.SentenceSpec(lexicon.Atomic{Index: 0}))
	require.NoError(t, err)

	left, err := tb.NewBranch(root)
	require.NoError(t, err)
	right, err := tb.NewBranch(root)
	require.NoError(t, err)

	leftNode, err := tb.AppendNode(left, tableau.SentenceSpec(lexicon.Atomic{Index: 1}))
	require.NoError(t, err)

	assert.True(t, left.HasNode(leftNode))
	assert.False(t, right.HasNode(leftNode), "a node added after forking must not leak to the sibling")
	assert.Equal(t, 1, left.Len()-right.Len())
}

func TestClosedBranchRejectsMutation(t *testing.T) {
	tb := newT()
	root := tb.RootBranch()
	n, err := tb.AppendNode(root, tableau.SentenceSpec(lexicon.Atomic{Index: 0}))
	require.NoError(t, err)

	require.NoError(t, tb.CloseBranch(root, tb.Step()))
	assert.True(t, root.Closed())

	_, err = tb.AppendNode(root, tableau.SentenceSpec(lexicon.Atomic{Index: 1}))
	assert.Error(t, err)

	err = tb.Tick(root, n)
	assert.Error(t, err)

	_, err = tb.NewBranch(root)
	assert.Error(t, err)

	// closing an already-closed branch is a no-op, not an error
	require.NoError(t, tb.CloseBranch(root, tb.Step()))
}

func TestRecordHistoryAndStep(t *testing.T) {
	tb := newT()
	root := tb.RootBranch()
	assert.Equal(t, 0, tb.Step())

	tb.AdvanceStep()
	tb.RecordHistory("Closure", root.ID(), nil)

	require.Len(t, tb.History, 1)
	assert.Equal(t, "Closure", tb.History[0].Rule)
	assert.Equal(t, 1, tb.History[0].Step)
}

func TestFreshWorldStartsAtZero(t *testing.T) {
	tb := newT()
	root := tb.RootBranch()
	assert.Equal(t, 0, tb.FreshWorld(root))

	_, err := tb.AppendNode(root, tableau.SentenceSpec(lexicon.Atomic{Index: 0}).AtWorld(0))
	require.NoError(t, err)
	assert.Equal(t, 1, tb.FreshWorld(root))
}

func TestNodesWithSentenceMatchesStructurally(t *testing.T) {
	tb := newT()
	root := tb.RootBranch()
	s := lexicon.Atomic{Index: 2}
	n1, err := tb.AppendNode(root, tableau.SentenceSpec(s))
	require.NoError(t, err)
	_, err = tb.AppendNode(root, tableau.SentenceSpec(lexicon.Atomic{Index: 3}))
	require.NoError(t, err)

	got := root.NodesWithSentence(lexicon.Atomic{Index: 2})
	require.Len(t, got, 1)
	assert.Equal(t, n1.ID(), got[0].ID())
}
