// Package contdtty provides an implementation of term.TTY via
// [github.com/containerd/console].
//
// [github.com/containerd/console]: https://pkg.go.dev/github.com/containerd/console
package contdtty

import (
	"os"

	"github.com/containerd/console"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/term"
)

type TTYContD struct {
	console.Console
	fileName string
}

var _ term.TTY = (*TTYContD)(nil)

func New(ttyFile string) (*TTYContD, error) { return newTTY(ttyFile) }

func newTTY(ttyFile string) (_ *TTYContD, err error) {
	defer func() {
		if r := recover(); r != nil {
			// console.ConsoleFromFile panics on some platforms
			err = errors.New(r)
		}
	}()
	if len(ttyFile) == 0 {
		ttyFile = internal.DefaultTTYDevice()
	}
	f, err := os.OpenFile(ttyFile, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	c, err := console.ConsoleFromFile(f)
	if err != nil {
		return nil, errors.New(err)
	}
	return &TTYContD{
		Console:  c,
		fileName: ttyFile,
	}, nil
}

func (t *TTYContD) Write(b []byte) (n int, err error) {
	if t == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	if t.Console == nil {
		return 0, errors.New(consts.ErrNilTTY)
	}
	return t.Console.Write(b)
}

func (t *TTYContD) Read(p []byte) (n int, err error) {
	if t == nil || t.Console == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.Console.Read(p)
}

func (t *TTYContD) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

// Raw puts the console into raw mode and returns a restore to the
// attributes captured when the console was opened.
func (t *TTYContD) Raw() (func() error, error) {
	if t == nil || t.Console == nil {
		return nil, errors.New(consts.ErrNilTTY)
	}
	if err := t.Console.SetRaw(); err != nil {
		return nil, errors.New(err)
	}
	return func() error {
		if err := t.Console.Reset(); err != nil {
			return errors.New(err)
		}
		return nil
	}, nil
}

var TTYProv term.TTYProvider = func(ptyName string) (term.TTY, error) { return New(ptyName) }

// Close ...
func (t *TTYContD) Close() error {
	if t == nil || t.Console == nil {
		return nil
	}
	defer func() { t.Console = nil }()
	if err := t.Console.Close(); err != nil {
		return errors.New(err)
	}
	return nil
}
