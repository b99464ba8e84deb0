// Package xtty provides an implementation of term.TTY via [golang.org/x/term].
//
// [golang.org/x/term]: https://pkg.go.dev/golang.org/x/term
package xtty

import (
	"os"

	xterm "golang.org/x/term"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/term"
)

type TTYX struct {
	f        *os.File
	fileName string
}

var _ term.TTY = (*TTYX)(nil)

func New(ttyFile string) (*TTYX, error) {
	if len(ttyFile) == 0 {
		ttyFile = internal.DefaultTTYDevice()
	}
	f, err := os.OpenFile(ttyFile, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	if !xterm.IsTerminal(int(f.Fd())) {
		_ = f.Close()
		return nil, errors.New(term.ErrNotATerminal)
	}
	return &TTYX{f: f, fileName: ttyFile}, nil
}

func (t *TTYX) Write(b []byte) (n int, err error) {
	if t == nil || t.f == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.f.Write(b)
}

func (t *TTYX) Read(p []byte) (n int, err error) {
	if t == nil || t.f == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.f.Read(p)
}

func (t *TTYX) Fd() uintptr {
	if t == nil || t.f == nil {
		return ^uintptr(0)
	}
	return t.f.Fd()
}

func (t *TTYX) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

// Raw switches to raw mode via term.MakeRaw.
func (t *TTYX) Raw() (func() error, error) {
	if t == nil || t.f == nil {
		return nil, errors.New(consts.ErrNilReceiver)
	}
	fd := int(t.f.Fd())
	saved, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, errors.New(err)
	}
	return func() error {
		if err := xterm.Restore(fd, saved); err != nil {
			return errors.New(err)
		}
		return nil
	}, nil
}

var TTYProv term.TTYProvider = func(ptyName string) (term.TTY, error) { return New(ptyName) }

// Close ...
func (t *TTYX) Close() error {
	if t == nil || t.f == nil {
		return nil
	}
	defer func() { t.f = nil }()
	return t.f.Close()
}
