//go:build !windows

// Package pkgterm provides an implementation of term.TTY via [github.com/pkg/term].
//
// [github.com/pkg/term]: https://pkg.go.dev/github.com/pkg/term
package pkgterm

import (
	pkgTerm "github.com/pkg/term"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/term"
)

type TTYPkgTerm struct {
	*pkgTerm.Term
	fileName string
}

var _ term.TTY = (*TTYPkgTerm)(nil)

func New(ttyFile string) (*TTYPkgTerm, error) {
	if len(ttyFile) == 0 {
		ttyFile = internal.DefaultTTYDevice()
	}
	t, err := pkgTerm.Open(ttyFile)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New(consts.ErrNilTTY)
	}
	return &TTYPkgTerm{Term: t, fileName: ttyFile}, nil
}

func (t *TTYPkgTerm) Write(b []byte) (n int, err error) {
	if t == nil || t.Term == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.Term.Write(b)
}

func (t *TTYPkgTerm) Read(p []byte) (n int, err error) {
	if t == nil || t.Term == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	return t.Term.Read(p)
}

func (t *TTYPkgTerm) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

// Raw switches to raw mode and returns a restore to the attributes
// captured when the terminal was opened.
func (t *TTYPkgTerm) Raw() (func() error, error) {
	if t == nil || t.Term == nil {
		return nil, errors.New(consts.ErrNilTTY)
	}
	if err := t.Term.SetRaw(); err != nil {
		return nil, errors.New(err)
	}
	return func() error {
		if err := t.Term.Restore(); err != nil {
			return errors.New(err)
		}
		return nil
	}, nil
}

var TTYProv term.TTYProvider = func(ptyName string) (term.TTY, error) { return New(ptyName) }

// Close ...
func (t *TTYPkgTerm) Close() error {
	if t == nil || t.Term == nil {
		return nil
	}
	defer func() { t.Term = nil }()
	if err := t.Term.Close(); err != nil {
		return errors.New(err)
	}
	return nil
}
