package termctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termctl"
	"github.com/srlehn/termctl/internal/dummytty"
	"github.com/srlehn/termctl/term"
	"github.com/srlehn/termctl/tty/devtty"
)

func TestSizeWithProvider(t *testing.T) {
	termctl.SetTTYProvider(func(ptyName string) (term.TTY, error) {
		return dummytty.NewWithSize(``, 101, 42)
	})
	defer termctl.SetTTYProvider(devtty.TTYProv)

	sz, err := termctl.Size()
	require.NoError(t, err)
	assert.Equal(t, uint16(101), sz.Width)
	assert.Equal(t, uint16(42), sz.Height)
}
