package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/lexicon"
	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	_ "github.com/owings1/pytableaux/pkg/logic/fde"
	_ "github.com/owings1/pytableaux/pkg/logic/k3"
	_ "github.com/owings1/pytableaux/pkg/logic/lp"
	_ "github.com/owings1/pytableaux/pkg/logic/modal"
	"github.com/owings1/pytableaux/pkg/predstore"
)

func atomic(i int) lexicon.Atomic { return lexicon.Atomic{Index: i} }

func TestBuildModusPonensValidInCPL(t *testing.T) {
	a, b := atomic(0), atomic(1)
	cond := lexicon.Operated{Op: lexicon.MaterialConditional, Operands: []lexicon.Sentence{a, b}}
	arg := predstore.NewArgument(b, cond, a)

	tb, err := engine.Build(arg, "CPL", engine.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, tb.Completed)
	assert.True(t, tb.Valid)
	assert.False(t, tb.Premature)
}

func TestBuildLawOfExcludedMiddleInvalidInFDE(t *testing.T) {
	a := atomic(0)
	excludedMiddle := lexicon.Operated{Op: lexicon.Disjunction, Operands: []lexicon.Sentence{a, lexicon.Negate(a)}}
	arg := predstore.NewArgument(excludedMiddle)

	tb, err := engine.Build(arg, "FDE", engine.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, tb.Completed)
	assert.True(t, tb.Invalid)
	require.NotEmpty(t, tb.Models)
}

func TestBuildUnknownLogicErrors(t *testing.T) {
	_, err := engine.Build(predstore.NewArgument(atomic(0)), "NOPE", engine.DefaultOptions())
	require.Error(t, err)
}

func TestBuildIsDeterministicAcrossRuns(t *testing.T) {
	a, b := atomic(0), atomic(1)
	cond := lexicon.Operated{Op: lexicon.MaterialConditional, Operands: []lexicon.Sentence{a, b}}
	arg := predstore.NewArgument(b, cond, a)

	tb1, err := engine.Build(arg, "CPL", engine.DefaultOptions())
	require.NoError(t, err)
	tb2, err := engine.Build(arg, "CPL", engine.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, len(tb1.History), len(tb2.History))
	for i := range tb1.History {
		assert.Equal(t, tb1.History[i].Rule, tb2.History[i].Rule)
	}
}

func TestBuildModalNecessitationInK(t *testing.T) {
	a := atomic(0)
	nec := lexicon.Operated{Op: lexicon.Necessity, Operands: []lexicon.Sentence{a}}
	arg := predstore.NewArgument(nec, a)

	tb, err := engine.Build(arg, "K", engine.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, tb.Completed)
	assert.True(t, tb.Invalid, "K validates no bare necessitation without a frame constraint")
}

func TestBuildSerialFrameValidatesPossibilityFromNecessity(t *testing.T) {
	a := atomic(0)
	nec := lexicon.Operated{Op: lexicon.Necessity, Operands: []lexicon.Sentence{a}}
	poss := lexicon.Operated{Op: lexicon.Possibility, Operands: []lexicon.Sentence{a}}
	arg := predstore.NewArgument(poss, nec)

	tb, err := engine.Build(arg, "D", engine.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, tb.Completed)
	assert.True(t, tb.Valid, "D's seriality plus NegatedPossibility's De Morgan rewrite must close every branch")
	assert.False(t, tb.Premature)
}

func TestBuildS5ValidatesNecessityCollapsesToTruth(t *testing.T) {
	a := atomic(0)
	nec := lexicon.Operated{Op: lexicon.Necessity, Operands: []lexicon.Sentence{a}}
	possNec := lexicon.Operated{Op: lexicon.Possibility, Operands: []lexicon.Sentence{nec}}
	arg := predstore.NewArgument(a, possNec)

	tb, err := engine.Build(arg, "S5", engine.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, tb.Completed)
	assert.True(t, tb.Valid, "S5's symmetric/reflexive/transitive closure must make <>[]a entail a")
	assert.False(t, tb.Premature)
}

func TestBuildManyRunsConcurrently(t *testing.T) {
	a, b := atomic(0), atomic(1)
	cond := lexicon.Operated{Op: lexicon.MaterialConditional, Operands: []lexicon.Sentence{a, b}}
	jobs := []engine.Job{
		{Argument: predstore.NewArgument(b, cond, a), LogicName: "CPL"},
		{Argument: predstore.NewArgument(atomic(0)), LogicName: "K3"},
		{Argument: predstore.NewArgument(atomic(0)), LogicName: "LP"},
	}
	results, err := engine.BuildMany(context.Background(), jobs, engine.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, tb := range results {
		assert.True(t, tb.Completed)
	}
}
