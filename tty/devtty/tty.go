// Package devtty provides an implementation of term.TTY backed by a
// plain file handle on the terminal device. Opening it has no side
// effect on the terminal attributes.
package devtty

import (
	"os"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/term"
)

type TTYDev struct {
	f        *os.File
	fileName string
}

var _ term.TTY = (*TTYDev)(nil)

func New(ttyFile string) (*TTYDev, error) {
	if len(ttyFile) == 0 {
		ttyFile = internal.DefaultTTYDevice()
	}
	f, err := os.OpenFile(ttyFile, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	return &TTYDev{f: f, fileName: ttyFile}, nil
}

func (t *TTYDev) Write(b []byte) (n int, err error) {
	if t == nil || t.f == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.f.Write(b)
}

func (t *TTYDev) Read(p []byte) (n int, err error) {
	if t == nil || t.f == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.f.Read(p)
}

func (t *TTYDev) Fd() uintptr {
	if t == nil || t.f == nil {
		return ^uintptr(0)
	}
	return t.f.Fd()
}

func (t *TTYDev) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

var TTYProv term.TTYProvider = func(ptyName string) (term.TTY, error) { return New(ptyName) }

// Close ...
func (t *TTYDev) Close() error {
	if t == nil || t.f == nil {
		return nil
	}
	defer func() { t.f = nil }()
	return t.f.Close()
}
