package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/internal/tui"
	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/lexicon"
	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	"github.com/owings1/pytableaux/pkg/predstore"
)

func TestModelStepsToCompletion(t *testing.T) {
	a := lexicon.Atomic{Index: 0}
	neg := lexicon.Operated{Op: lexicon.Negation, Operands: []lexicon.Sentence{a}}
	arg := predstore.NewArgument(a, neg)

	m, err := tui.New(arg, "CPL", engine.DefaultOptions())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
		m = updated.(*tui.Model)
	}
	assert.Contains(t, m.View(), "CPL tableau")
	assert.Contains(t, m.View(), "status:")
}

func TestModelQuits(t *testing.T) {
	m, err := tui.New(predstore.NewArgument(lexicon.Atomic{Index: 0}), "CPL", engine.DefaultOptions())
	require.NoError(t, err)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}
