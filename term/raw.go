package term

import (
	"runtime"
	"sync"

	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
	"github.com/srlehn/termctl/internal/logx"
)

// RawModeGuard restores the terminal attributes captured when raw
// mode was enabled. The restore attempt is made exactly once: either
// through Close or, if the guard is leaked, through a finalizer.
// Close reports restoration failures to the caller; on the finalizer
// path they are logged through the package logger and discarded.
type RawModeGuard struct {
	once        sync.Once
	restoreFunc func() error
	closers     []interface{ Close() error }
}

// EnableRawMode snapshots the current terminal attributes, puts the
// terminal into raw mode and returns a guard that undoes it.
//
// Raw mode means input is delivered byte-by-byte: no line buffering,
// no echo, no signal generation from control characters.
//
// Enabling raw mode again while an earlier guard is still live is
// permitted and produces a second snapshot of the already-raw state;
// whichever guard closes last determines the final attributes. The
// caller is responsible for serializing raw-mode transitions.
func EnableRawMode(tty TTY) (*RawModeGuard, error) {
	if err := errors.NilParam(tty); err != nil {
		return nil, err
	}
	var restoreFunc func() error
	if rm, ok := tty.(rawModer); ok {
		rf, err := rm.Raw()
		if err != nil {
			return nil, errors.New(err)
		}
		restoreFunc = rf
	} else {
		rf, err := sysMakeRaw(tty)
		if err != nil {
			return nil, err
		}
		restoreFunc = rf
	}
	g := &RawModeGuard{restoreFunc: restoreFunc}
	runtime.SetFinalizer(g, func(g *RawModeGuard) {
		if err := g.Close(); err != nil {
			logx.Warn(`terminal attribute restoration failed`, logger(), `error`, err)
		}
	})
	return g, nil
}

// AddClosers registers closers to be run after restoration, in
// reverse order. Closers added after the guard was closed are never
// run.
func (g *RawModeGuard) AddClosers(closers ...interface{ Close() error }) {
	if g == nil {
		return
	}
	g.closers = append(g.closers, closers...)
}

// Close restores the captured attributes. Only the first call
// restores; subsequent calls are no-ops returning nil.
func (g *RawModeGuard) Close() error {
	if g == nil {
		return nil
	}
	var err error
	g.once.Do(func() {
		runtime.SetFinalizer(g, nil)
		var errs []error
		if g.restoreFunc != nil {
			errs = append(errs, g.restoreFunc())
		}
		for i := len(g.closers) - 1; i >= 0; i-- {
			if g.closers[i] == nil {
				continue
			}
			errs = append(errs, g.closers[i].Close())
		}
		err = errors.Join(errs...)
	})
	return err
}

// IsRawModeEnabled re-reads the current terminal attributes and
// reports whether they match the raw predicate: canonical input,
// echo and signal generation all disabled. It does not consult any
// guard in this process, so raw mode enabled by another process or
// by hand is detected as well.
func IsRawModeEnabled(tty TTY) (bool, error) {
	if tty == nil {
		return false, errors.New(consts.ErrNilParam)
	}
	return sysIsRaw(tty)
}
