//go:build !windows

package term_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termctl/term"
	"github.com/srlehn/termctl/tty/creacktty"
	"github.com/srlehn/termctl/tty/devtty"
)

func TestRawModeRoundTripOnPty(t *testing.T) {
	tty, err := creacktty.New()
	require.NoError(t, err)
	defer tty.Close()

	enabled, err := term.IsRawModeEnabled(tty)
	require.NoError(t, err)
	assert.False(t, enabled, "fresh pty should be in canonical mode")

	guard, err := term.EnableRawMode(tty)
	require.NoError(t, err)

	enabled, err = term.IsRawModeEnabled(tty)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, guard.Close())

	enabled, err = term.IsRawModeEnabled(tty)
	require.NoError(t, err)
	assert.False(t, enabled)

	// second close is a no-op
	assert.NoError(t, guard.Close())
}

func TestOverlappingGuards(t *testing.T) {
	tty, err := creacktty.New()
	require.NoError(t, err)
	defer tty.Close()

	g1, err := term.EnableRawMode(tty)
	require.NoError(t, err)
	g2, err := term.EnableRawMode(tty)
	require.NoError(t, err)

	// g2 snapshotted the already-raw state, closing it keeps raw
	require.NoError(t, g2.Close())
	enabled, err := term.IsRawModeEnabled(tty)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, g1.Close())
	enabled, err = term.IsRawModeEnabled(tty)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSizeOnPty(t *testing.T) {
	tty, err := creacktty.New()
	require.NoError(t, err)
	defer tty.Close()

	require.NoError(t, tty.Resize(120, 40))

	sz, err := term.GetSize(tty)
	require.NoError(t, err)
	assert.Equal(t, uint16(120), sz.Width)
	assert.Equal(t, uint16(40), sz.Height)
}

func TestGetSizeNotATerminal(t *testing.T) {
	name := filepath.Join(t.TempDir(), `not-a-tty`)
	require.NoError(t, os.WriteFile(name, []byte(`plain file`), 0o600))

	tty, err := devtty.New(name)
	require.NoError(t, err)
	defer tty.Close()

	_, err = term.GetSize(tty)
	assert.ErrorIs(t, err, term.ErrNotATerminal)

	_, err = term.IsRawModeEnabled(tty)
	assert.ErrorIs(t, err, term.ErrNotATerminal)
}
