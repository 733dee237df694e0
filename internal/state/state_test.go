package state

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabsEnabledRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)

	assert.True(t, s.TabsEnabled(7), "defaults to enabled")

	require.NoError(t, s.SetTabsEnabled(7, false))
	require.NoError(t, s.SetLastCanvas("scratch"))

	// a fresh store reads the same file
	s2, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, s2.TabsEnabled(7))
	assert.True(t, s2.TabsEnabled(8), "other canvases unaffected")
	assert.Equal(t, "scratch", s2.LastCanvas())
}

func TestOpenToleratesGarbage(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.SetLastCanvas("x"))

	// corrupt the file; Open starts fresh instead of failing
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o644))
	s2, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "", s2.LastCanvas())
}
