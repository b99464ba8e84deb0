//go:build windows

package term

import (
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
)

// console input mode masks, the split follows the conhost semantics
// of raw mode: line editing, echo and event reporting off, extended
// flags and VT input on.
const (
	rawModeMask uint32 = windows.ENABLE_EXTENDED_FLAGS |
		windows.ENABLE_INSERT_MODE |
		windows.ENABLE_QUICK_EDIT_MODE |
		windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	notRawModeMask uint32 = windows.ENABLE_LINE_INPUT |
		windows.ENABLE_ECHO_INPUT |
		windows.ENABLE_MOUSE_INPUT |
		windows.ENABLE_WINDOW_INPUT |
		windows.ENABLE_PROCESSED_INPUT
)

// the fd of a TTY backend is not usable for both directions of the
// console, operations open CONIN$/CONOUT$ themselves.

func openConsole(name string) (windows.Handle, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return windows.InvalidHandle, errors.New(err)
	}
	h, err := windows.CreateFile(p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil, windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return windows.InvalidHandle, wrapSysErr(err)
	}
	return h, nil
}

func sysSize(_ TTY) (Size, error) {
	h, err := openConsole(`CONOUT$`)
	if err != nil {
		return Size{}, err
	}
	defer windows.CloseHandle(h)
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return Size{}, wrapSysErr(err)
	}
	return Size{
		Width:  uint16(info.Window.Right - info.Window.Left + 1),
		Height: uint16(info.Window.Bottom - info.Window.Top + 1),
	}, nil
}

func sysIsRaw(_ TTY) (bool, error) {
	h, err := openConsole(`CONIN$`)
	if err != nil {
		return false, err
	}
	defer windows.CloseHandle(h)
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false, wrapSysErr(err)
	}
	return mode&notRawModeMask == 0 && mode&rawModeMask == rawModeMask, nil
}

func sysMakeRaw(_ TTY) (restore func() error, _ error) {
	h, err := openConsole(`CONIN$`)
	if err != nil {
		return nil, err
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		_ = windows.CloseHandle(h)
		return nil, wrapSysErr(err)
	}
	newMode := mode&^notRawModeMask | rawModeMask
	if err := windows.SetConsoleMode(h, newMode); err != nil {
		_ = windows.CloseHandle(h)
		return nil, wrapSysErr(err)
	}
	return func() error {
		errSet := windows.SetConsoleMode(h, mode)
		errClose := windows.CloseHandle(h)
		if err := errors.Join(wrapSysErr(errSet), errClose); err != nil {
			return err
		}
		return nil
	}, nil
}

func wrapSysErr(err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case windows.ERROR_INVALID_HANDLE, windows.ERROR_FILE_NOT_FOUND:
			return errors.Join(consts.ErrNotATerminal, err)
		}
	}
	return errors.New(err)
}
