//go:build !windows

// Package uroottty provides an implementation of term.TTY via
// [github.com/u-root/u-root/pkg/termios].
//
// [github.com/u-root/u-root/pkg/termios]: https://pkg.go.dev/github.com/u-root/u-root/pkg/termios
package uroottty

import (
	"github.com/u-root/u-root/pkg/termios"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/term"
)

type TTYURoot struct {
	*termios.TTYIO
	fileName string
}

var _ term.TTY = (*TTYURoot)(nil)

func New(ttyFile string) (*TTYURoot, error) {
	if len(ttyFile) == 0 {
		ttyFile = internal.DefaultTTYDevice()
	}
	t, err := termios.NewWithDev(ttyFile)
	if err != nil {
		return nil, errors.New(err)
	}
	return &TTYURoot{
		TTYIO:    t,
		fileName: ttyFile,
	}, nil
}

func (t *TTYURoot) Write(b []byte) (n int, err error) {
	if t == nil || t.TTYIO == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.TTYIO.Write(b)
}

func (t *TTYURoot) Read(p []byte) (n int, err error) {
	if t == nil || t.TTYIO == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.TTYIO.Read(p)
}

func (t *TTYURoot) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

func (t *TTYURoot) SizePixel() (cw int, ch int, pw int, ph int, e error) {
	if t == nil || t.TTYIO == nil {
		return 0, 0, 0, 0, errors.New(consts.ErrNilTTY)
	}
	sz, err := t.GetWinSize()
	if err != nil {
		return 0, 0, 0, 0, errors.New(err)
	}
	return int(sz.Col), int(sz.Row), int(sz.Xpixel), int(sz.Ypixel), nil
}

// Raw switches to raw mode. termios.TTYIO.Raw returns the previous
// attributes, the restore writes them back.
func (t *TTYURoot) Raw() (func() error, error) {
	if t == nil || t.TTYIO == nil {
		return nil, errors.New(consts.ErrNilTTY)
	}
	saved, err := t.TTYIO.Raw()
	if err != nil {
		return nil, errors.New(err)
	}
	return func() error {
		if err := t.TTYIO.Set(saved); err != nil {
			return errors.New(err)
		}
		return nil
	}, nil
}

var TTYProv term.TTYProvider = func(ptyName string) (term.TTY, error) { return New(ptyName) }

// Close ...
func (t *TTYURoot) Close() error {
	if t == nil || t.TTYIO == nil {
		return nil
	}
	t.TTYIO = nil
	return nil
}
