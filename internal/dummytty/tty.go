package dummytty

import (
	"io"
	"strings"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/term"
)

type TTYDummy struct {
	rdr            *strings.Reader
	fileName       string
	width, height  int
	pxWidth, pxHgt int
	hasSize        bool
}

var _ term.TTY = (*TTYDummy)(nil)

func New(buf string) (*TTYDummy, error) {
	rdr := strings.NewReader(buf)
	return &TTYDummy{
		rdr:      rdr,
		fileName: internal.DefaultTTYDevice(),
	}, nil
}

// NewWithSize returns a TTYDummy whose SizePixel reports the given
// cell dimensions (and zero pixels).
func NewWithSize(buf string, width, height int) (*TTYDummy, error) {
	t, err := New(buf)
	if err != nil {
		return nil, err
	}
	t.width, t.height = width, height
	t.hasSize = true
	return t, nil
}

func (t *TTYDummy) Write(b []byte) (n int, err error) { return io.Discard.Write(b) }

func (t *TTYDummy) Read(p []byte) (n int, err error) {
	if t == nil || t.rdr == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.rdr.Read(p)
}

func (t *TTYDummy) SizePixel() (cw int, ch int, pw int, ph int, e error) {
	if t == nil || !t.hasSize {
		return 0, 0, 0, 0, errors.New(`no size configured`)
	}
	return t.width, t.height, t.pxWidth, t.pxHgt, nil
}

func (t *TTYDummy) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

// Close ...
func (t *TTYDummy) Close() error { return nil }
