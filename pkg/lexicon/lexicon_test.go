package lexicon_test

import (
	"testing"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicatedArityMismatch(t *testing.T) {
	pred, err := lexicon.NewPredicate(0, 0, 2)
	require.NoError(t, err)

	_, err = lexicon.NewPredicated(pred, []lexicon.Parameter{lexicon.Constant{Index: 0}})
	require.Error(t, err)
	var arityErr *lexicon.ArityMismatchError
	assert.ErrorAs(t, err, &arityErr)
}

func TestQuantifiedRejectsUnboundVariable(t *testing.T) {
	pred, err := lexicon.NewPredicate(0, 0, 1)
	require.NoError(t, err)
	body, err := lexicon.NewPredicated(pred, []lexicon.Parameter{lexicon.Constant{Index: 0}})
	require.NoError(t, err)

	_, err = lexicon.NewQuantified(lexicon.Existential, lexicon.Variable{Index: 0}, body)
	require.Error(t, err)
	var unbound *lexicon.UnboundVariableError
	assert.ErrorAs(t, err, &unbound)
}

func TestQuantifiedRejectsShadowing(t *testing.T) {
	pred, err := lexicon.NewPredicate(0, 0, 1)
	require.NoError(t, err)
	v := lexicon.Variable{Index: 0}

	inner, err := lexicon.NewPredicated(pred, []lexicon.Parameter{v})
	require.NoError(t, err)
	innerQ, err := lexicon.NewQuantified(lexicon.Existential, v, inner)
	require.NoError(t, err)

	outerBody, err := lexicon.NewOperated(lexicon.Conjunction, []lexicon.Sentence{innerQ, inner})
	require.NoError(t, err)

	_, err = lexicon.NewQuantified(lexicon.Universal, v, outerBody)
	require.Error(t, err)
	var bound *lexicon.BoundVariableError
	assert.ErrorAs(t, err, &bound)
}

func TestOrderingTotalAndStable(t *testing.T) {
	a := lexicon.Atomic{Index: 0}
	b := lexicon.Atomic{Index: 1}
	assert.True(t, lexicon.Less(a, b))
	assert.False(t, lexicon.Less(b, a))
	assert.Equal(t, 0, lexicon.Compare(a, a))

	na := lexicon.Negate(a)
	nb := lexicon.Negate(b)
	assert.True(t, lexicon.Less(na, nb))
}

func TestDecompositionSets(t *testing.T) {
	pred, err := lexicon.NewPredicate(0, 0, 1)
	require.NoError(t, err)
	v := lexicon.Variable{Index: 0}
	body, err := lexicon.NewPredicated(pred, []lexicon.Parameter{v})
	require.NoError(t, err)
	q, err := lexicon.NewQuantified(lexicon.Existential, v, body)
	require.NoError(t, err)

	assert.Empty(t, lexicon.FreeVariables(q))
	assert.Len(t, lexicon.Variables(q), 1)
	assert.Len(t, lexicon.Predicates(q), 1)

	negated := lexicon.Negate(q)
	assert.Subset(t, toAnySlice(lexicon.Atomics(negated)), toAnySlice(lexicon.Atomics(q)))
}

func toAnySlice[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
