// Package termctl provides a thin, cross-platform layer over
// terminal control primitives: size queries, raw input mode with
// scoped restoration and resize notifications.
//
// The functions here operate on the default terminal device through
// an exchangeable backend from the tty/ subdirectories; the
// underlying operations live in the term package.
package termctl

import (
	"log/slog"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/term"
	"github.com/srlehn/termctl/tty/devtty"
)

var (
	// chosen defaults
	ttyDefault                   = internal.DefaultTTYDevice()
	ttyProvider term.TTYProvider = devtty.TTYProv
)

// SetTTYDevName changes the terminal device used by this package.
func SetTTYDevName(ttyDevName string) {
	if len(ttyDevName) > 0 {
		ttyDefault = ttyDevName
	}
}

// SetTTYProvider changes the TTY backend used by this package, e.g.
// one of the tty/ subdirectory implementations.
func SetTTYProvider(ttyProv term.TTYProvider) {
	if ttyProv != nil {
		ttyProvider = ttyProv
	}
}

// SetLogger ...
func SetLogger(l *slog.Logger) { term.SetLogger(l) }

// Size returns the current terminal size, queried anew on every
// call. ErrNotATerminal is returned when the process has no
// terminal attached.
func Size() (term.Size, error) {
	tty, err := ttyProvider(ttyDefault)
	if err != nil {
		return term.Size{}, err
	}
	defer tty.Close()
	return term.GetSize(tty)
}

// EnableRawMode puts the terminal into raw mode. The returned guard
// restores the previous attributes on Close, exactly once, and holds
// the terminal handle open until then.
func EnableRawMode() (*term.RawModeGuard, error) {
	tty, err := ttyProvider(ttyDefault)
	if err != nil {
		return nil, err
	}
	guard, err := term.EnableRawMode(tty)
	if err != nil {
		_ = tty.Close()
		return nil, err
	}
	guard.AddClosers(tty)
	return guard, nil
}

// IsRawModeEnabled re-reads the terminal attributes and reports
// whether they currently match raw mode, regardless of how it was
// enabled.
func IsRawModeEnabled() (bool, error) {
	tty, err := ttyProvider(ttyDefault)
	if err != nil {
		return false, err
	}
	defer tty.Close()
	return term.IsRawModeEnabled(tty)
}

// OnResize returns a receiver observing size changes of the
// controlling terminal. See term.OnResize.
func OnResize() (*term.ResizeReceiver, error) { return term.OnResize() }
