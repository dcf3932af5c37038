package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/rule"
)

func TestPureModalLogicsRegistered(t *testing.T) {
	for _, name := range []string{"K", "D", "T", "S4", "S5"} {
		l, ok := logic.Get(name)
		require.True(t, ok, "expected %s to be registered", name)
		assert.True(t, l.Meta.Modal)
	}
}

func TestManyValuedCrossesRegistered(t *testing.T) {
	for _, name := range []string{"KFDE", "TFDE", "S5FDE", "KK3", "TK3", "S4LP", "S5LP", "DMH", "TNH"} {
		l, ok := logic.Get(name)
		require.True(t, ok, "expected %s to be registered", name)
		assert.True(t, l.Meta.Modal)
	}
}

func TestFrameConstraintNamesMatchStrength(t *testing.T) {
	s5, ok := logic.Get("S5")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"reflexive", "transitive", "symmetric"}, s5.Meta.AccessConstraints)

	k, ok := logic.Get("K")
	require.True(t, ok)
	assert.Empty(t, k.Meta.AccessConstraints)
}

func TestComposedRootIncludesBaseAndModalGroups(t *testing.T) {
	s4, ok := logic.Get("S4")
	require.True(t, ok)
	root := s4.Rules(rule.NewHelpers())
	var names []string
	for _, g := range root.Groups {
		names = append(names, g.Name)
	}
	assert.Contains(t, names, "closure")
	assert.Contains(t, names, "modal operator rules")
	assert.Contains(t, names, "frame constraint rules")
}
