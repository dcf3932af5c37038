package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/pkg/fixtures"
)

func TestRegistryLoadsEmbeddedFixtures(t *testing.T) {
	names := fixtures.Names()
	assert.Contains(t, names, "modus-ponens")
	assert.Contains(t, names, "law-of-excluded-middle-fde")
}

func TestGetModusPonens(t *testing.T) {
	f, ok := fixtures.Get("modus-ponens")
	require.True(t, ok)
	assert.Equal(t, "CPL", f.LogicName)
	assert.Len(t, f.Argument.Premises, 2)
}

func TestGetUnknownFixture(t *testing.T) {
	_, ok := fixtures.Get("does-not-exist")
	assert.False(t, ok)
}
