package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	_ "github.com/owings1/pytableaux/pkg/logic/fde"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/tableau"
)

func TestExtractBivalentLiterals(t *testing.T) {
	l := logic.MustGet("CPL")
	a := lexicon.Atomic{Index: 0}
	arg := predstore.NewArgument(a)
	tb := tableau.New(arg, "CPL")
	_, err := tb.AppendNode(tb.RootBranch(), tableau.SentenceSpec(lexicon.Negate(a)))
	require.NoError(t, err)

	m := Extract(tb, l, tb.RootBranch())
	assert.Equal(t, logic.FalseValue, m.ValueAt(0, a))
}

func TestExtractFDEGlut(t *testing.T) {
	l := logic.MustGet("FDE")
	a := lexicon.Atomic{Index: 0}
	arg := predstore.NewArgument(a)
	tb := tableau.New(arg, "FDE")
	b := tb.RootBranch()
	_, err := tb.AppendNode(b, tableau.SentenceSpec(a).Designate(true))
	require.NoError(t, err)
	_, err = tb.AppendNode(b, tableau.SentenceSpec(lexicon.Negate(a)).Designate(true))
	require.NoError(t, err)

	m := Extract(tb, l, b)
	assert.Equal(t, logic.GlutValue, m.ValueAt(0, a))
}

func TestExtractCounterModelLawOfExcludedMiddle(t *testing.T) {
	l := logic.MustGet("FDE")
	a := lexicon.Atomic{Index: 0}
	excludedMiddle := lexicon.Operated{Op: lexicon.Disjunction, Operands: []lexicon.Sentence{a, lexicon.Negate(a)}}
	arg := predstore.NewArgument(excludedMiddle)
	tb := tableau.New(arg, "FDE")
	b := tb.RootBranch()
	_, err := tb.AppendNode(b, tableau.SentenceSpec(a).Designate(false))
	require.NoError(t, err)
	_, err = tb.AppendNode(b, tableau.SentenceSpec(lexicon.Negate(a)).Designate(false))
	require.NoError(t, err)

	m := Extract(tb, l, b)
	assert.True(t, m.IsCounterModel)
	assert.Equal(t, logic.GapValue, m.ValueAt(0, a))
}
