package term

import (
	"log/slog"
	"sync/atomic"

	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
)

// TTY is a handle to a terminal device. The terminal itself is a
// process-wide shared resource; nothing here serializes concurrent
// attribute changes through separate handles.
//
// Implementations may additionally provide any of:
//   - Fd() uintptr
//   - SizePixel() (cw int, ch int, pw int, ph int, e error)
//   - Raw() (restore func() error, e error) // ttyMattN github.com/mattn/go-tty
//
// which the operations in this package prefer over reopening the
// device by name.
type TTY interface {
	TTYDevName() string
	Close() error // io.Closer
}

// TTYProvider opens a TTY for the given device name.
type TTYProvider func(ttyDevName string) (TTY, error)

var (
	// ErrNotATerminal is returned when an operation requires a
	// terminal device and the handle refers to something else,
	// e.g. a file or a pipe.
	ErrNotATerminal = consts.ErrNotATerminal
	// ErrUnsupported is returned when the platform lacks the
	// required primitive.
	ErrUnsupported = errors.ErrUnsupported
)

type fder interface {
	Fd() uintptr // os.File
}

type sizePixeler interface {
	SizePixel() (cw int, ch int, pw int, ph int, e error)
}

type rawModer interface {
	Raw() (func() error, error) // ttyMattN github.com/mattn/go-tty
}

var loggerDefault atomic.Pointer[slog.Logger]

// SetLogger sets the logger for failures that have no caller to
// return to: attribute restoration during finalization and size
// queries inside the resize watcher. Default is nil (silent).
func SetLogger(l *slog.Logger) { loggerDefault.Store(l) }

func logger() *slog.Logger { return loggerDefault.Load() }

// ttyDevName is a TTY known only by device name. Operations on it
// open the device anew each time.
type ttyDevName string

var _ TTY = ttyDevName(``)

func (d ttyDevName) TTYDevName() string { return string(d) }
func (d ttyDevName) Close() error       { return nil }
