package parser_test

import (
	"testing"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/parser"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtomicStandard(t *testing.T) {
	s, err := parser.Parse("a", notation.Standard, predstore.New())
	require.NoError(t, err)
	assert.Equal(t, lexicon.Atomic{Index: 0}, s)
}

func TestParseFreeVariableRejected(t *testing.T) {
	_, err := parser.Parse("Fx", notation.Standard, mustStore(t))
	require.Error(t, err)
	var pe *parser.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseUnknownPredicateRejected(t *testing.T) {
	_, err := parser.Parse("ExFx", notation.Standard, predstore.New())
	require.Error(t, err)
}

func TestParseMissingParenRejected(t *testing.T) {
	_, err := parser.Parse("a&b", notation.Standard, predstore.New())
	require.Error(t, err)
}

func TestParsePolishConditionalOfAtomics(t *testing.T) {
	premise, err := parser.Parse("Uab", notation.Polish, predstore.New())
	require.NoError(t, err)
	want, err := lexicon.NewOperated(lexicon.Conditional, []lexicon.Sentence{
		lexicon.Atomic{Index: 0}, lexicon.Atomic{Index: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, want, premise)
}

func mustStore(t *testing.T) *predstore.Store {
	t.Helper()
	store := predstore.New()
	pred, err := lexicon.NewPredicate(0, 0, 1)
	require.NoError(t, err)
	require.NoError(t, store.Add(pred))
	return store
}
