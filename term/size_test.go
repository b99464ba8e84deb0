package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termctl/internal/dummytty"
	"github.com/srlehn/termctl/term"
)

func TestGetSizeBackendReported(t *testing.T) {
	tty, err := dummytty.NewWithSize(``, 132, 43)
	require.NoError(t, err)
	defer tty.Close()

	sz, err := term.GetSize(tty)
	require.NoError(t, err)
	assert.Equal(t, term.Size{Width: 132, Height: 43}, sz)
}

func TestGetSizeNilTTY(t *testing.T) {
	_, err := term.GetSize(nil)
	assert.Error(t, err)
}
