package writer_test

import (
	"testing"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/parser"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/writer"
	"github.com/stretchr/testify/require"
)

func sampleSentences(t *testing.T, store *predstore.Store) []lexicon.Sentence {
	t.Helper()
	a := lexicon.Atomic{Index: 0}
	b := lexicon.Atomic{Index: 1, Subscript: 2}

	pred, err := lexicon.NewPredicate(0, 0, 2)
	require.NoError(t, err)
	require.NoError(t, store.Add(pred))
	pred2, err := lexicon.NewPredicate(1, 0, 1)
	require.NoError(t, err)
	require.NoError(t, store.Add(pred2))

	predicated, err := lexicon.NewPredicated(pred, []lexicon.Parameter{
		lexicon.Constant{Index: 0}, lexicon.Constant{Index: 1, Subscript: 1},
	})
	require.NoError(t, err)

	v := lexicon.Variable{Index: 0}
	body, err := lexicon.NewPredicated(pred2, []lexicon.Parameter{v})
	require.NoError(t, err)
	quantified, err := lexicon.NewQuantified(lexicon.Existential, v, body)
	require.NoError(t, err)

	conj, err := lexicon.NewOperated(lexicon.Conjunction, []lexicon.Sentence{a, b})
	require.NoError(t, err)
	neg := lexicon.Negate(conj)
	poss, err := lexicon.NewOperated(lexicon.Possibility, []lexicon.Sentence{predicated})
	require.NoError(t, err)
	cond, err := lexicon.NewOperated(lexicon.Conditional, []lexicon.Sentence{a, poss})
	require.NoError(t, err)

	return []lexicon.Sentence{a, b, predicated, quantified, conj, neg, poss, cond}
}

func TestRoundTripStandardASCII(t *testing.T) {
	store := predstore.New()
	for _, s := range sampleSentences(t, store) {
		text := writer.Write(s, writer.ASCIIStandard)
		got, err := parser.Parse(text, notation.Standard, store)
		require.NoError(t, err, "text=%q", text)
		require.Equal(t, s, got, "text=%q", text)
	}
}

func TestRoundTripPolishASCII(t *testing.T) {
	store := predstore.New()
	for _, s := range sampleSentences(t, store) {
		text := writer.Write(s, writer.ASCIIPolish)
		got, err := parser.Parse(text, notation.Polish, store)
		require.NoError(t, err, "text=%q", text)
		require.Equal(t, s, got, "text=%q", text)
	}
}
