package docsgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/internal/docsgen"
	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/lexicon"
	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/writer"
)

func TestExtractMarkdownIncludesVerdict(t *testing.T) {
	a := lexicon.Atomic{Index: 0}
	arg := predstore.NewArgument(a, a)
	tb, err := engine.Build(arg, "CPL", engine.DefaultOptions())
	require.NoError(t, err)

	md, err := docsgen.ExtractMarkdown(tb, writer.ASCIIStandard)
	require.NoError(t, err)
	assert.Contains(t, md, "CPL proof")
	assert.Contains(t, md, "valid")
}
