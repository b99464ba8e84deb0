//go:build !windows

// Package creacktty provides an implementation of term.TTY via
// [github.com/creack/pty/v2]. New opens a fresh pty pair instead of
// the controlling terminal, which also makes it the fixture for
// exercising terminal operations without one.
//
// [github.com/creack/pty/v2]: https://pkg.go.dev/github.com/creack/pty/v2
package creacktty

import (
	"os"

	"github.com/creack/pty/v2"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/term"
)

type TTYCreack struct {
	master   *os.File
	slave    *os.File
	fileName string
}

var _ term.TTY = (*TTYCreack)(nil)

func New() (*TTYCreack, error) {
	p, t, err := pty.Open()
	if err != nil {
		return nil, errors.New(err)
	}
	return &TTYCreack{
		master:   p,
		slave:    t,
		fileName: t.Name(),
	}, nil
}

func (t *TTYCreack) Write(b []byte) (n int, err error) {
	if t == nil || t.master == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.master.Write(b)
}

func (t *TTYCreack) Read(p []byte) (n int, err error) {
	if t == nil || t.master == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.master.Read(p)
}

// Fd returns the slave end, the side with the terminal line
// discipline.
func (t *TTYCreack) Fd() uintptr {
	if t == nil || t.slave == nil {
		return ^uintptr(0)
	}
	return t.slave.Fd()
}

func (t *TTYCreack) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

func (t *TTYCreack) SizePixel() (cw int, ch int, pw int, ph int, e error) {
	if t == nil || t.master == nil {
		return 0, 0, 0, 0, errors.New(consts.ErrNilReceiver)
	}
	sz, err := pty.GetsizeFull(t.master)
	if err != nil {
		return 0, 0, 0, 0, errors.New(err)
	}
	return int(sz.Cols), int(sz.Rows), int(sz.X), int(sz.Y), nil
}

// Resize sets the pty size in cells.
func (t *TTYCreack) Resize(width, height uint16) error {
	if t == nil || t.master == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if err := pty.Setsize(t.master, &pty.Winsize{Rows: height, Cols: width}); err != nil {
		return errors.New(err)
	}
	return nil
}

// Close ...
func (t *TTYCreack) Close() error {
	if t == nil {
		return nil
	}
	var errM, errS error
	if t.master != nil {
		errM = t.master.Close()
		t.master = nil
	}
	if t.slave != nil {
		errS = t.slave.Close()
		t.slave = nil
	}
	return errors.Join(errM, errS)
}
