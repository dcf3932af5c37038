package cliapp_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/internal/cliapp"
	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	_ "github.com/owings1/pytableaux/pkg/logic/fde"
)

func newTestRoot(t *testing.T) (*bytes.Buffer, *cobra.Command) {
	t.Helper()
	root := cliapp.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return &out, root
}

func TestProveCommandValidArgument(t *testing.T) {
	out, root := newTestRoot(t)
	root.SetArgs([]string{"prove", "a", "-p", "a", "-l", "CPL"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "valid")
}

func TestProveCommandFixture(t *testing.T) {
	out, root := newTestRoot(t)
	root.SetArgs([]string{"prove", "--fixture", "modus-ponens"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "modus-ponens")
}

func TestStepCommandReportsApplication(t *testing.T) {
	out, root := newTestRoot(t)
	root.SetArgs([]string{"step", "a", "-p", "a", "-l", "CPL", "-c", "3"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "STEP")
}

func TestRenderCommandText(t *testing.T) {
	out, root := newTestRoot(t)
	root.SetArgs([]string{"render", "a", "-p", "a", "-l", "CPL", "-f", "text"})
	require.NoError(t, root.Execute())
	assert.NotEmpty(t, out.String())
}

func TestProveCommandUnknownLogic(t *testing.T) {
	_, root := newTestRoot(t)
	root.SetArgs([]string{"prove", "a", "-l", "NOPE"})
	assert.Error(t, root.Execute())
}
