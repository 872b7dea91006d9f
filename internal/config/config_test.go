package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewlang/core/internal/config"
)

func TestDefaultIsStrictNonLegacy(t *testing.T) {
	c := config.Default()
	assert.False(t, c.LegacyMode)
	assert.False(t, c.IMEAutoCommitOnFocusOut)
	assert.False(t, c.ResolveOptions().LegacyMode)
}

func TestReadDecodesBothFlags(t *testing.T) {
	c, err := config.Read(strings.NewReader(`
legacy_mode = true
ime_auto_commit_on_focus_out = true
`))
	require.NoError(t, err)
	assert.True(t, c.LegacyMode)
	assert.True(t, c.IMEAutoCommitOnFocusOut)
	assert.True(t, c.ResolveOptions().LegacyMode)
}

func TestOpenMissingFileYieldsDefault(t *testing.T) {
	c, err := config.Open("/nonexistent/path/does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	var buf strings.Builder
	in := config.Config{LegacyMode: true, IMEAutoCommitOnFocusOut: false}
	require.NoError(t, config.Write(in, &buf))

	out, err := config.Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
