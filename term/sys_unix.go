//go:build unix

package term

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
)

func openTTYDev(ttyDevName string) (*os.File, error) {
	if len(ttyDevName) == 0 {
		ttyDevName = internal.DefaultTTYDevice()
	}
	f, err := os.OpenFile(ttyDevName, os.O_RDWR, 0)
	if err != nil {
		return nil, wrapSysErr(err)
	}
	return f, nil
}

// ttyFd returns a file descriptor for the tty, opening the device
// anew when the backend does not expose one. closeFunc is nil for a
// borrowed descriptor.
func ttyFd(tty TTY) (fd uintptr, closeFunc func() error, _ error) {
	if f, ok := tty.(fder); ok {
		return f.Fd(), nil, nil
	}
	f, err := openTTYDev(tty.TTYDevName())
	if err != nil {
		return 0, nil, err
	}
	return f.Fd(), f.Close, nil
}

func sysSize(tty TTY) (Size, error) {
	fd, closeFunc, err := ttyFd(tty)
	if err != nil {
		return Size{}, err
	}
	if closeFunc != nil {
		defer func() { _ = closeFunc() }()
	}
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, wrapSysErr(err)
	}
	return Size{
		Width:       ws.Col,
		Height:      ws.Row,
		PixelWidth:  ws.Xpixel,
		PixelHeight: ws.Ypixel,
	}, nil
}

func sysIsRaw(tty TTY) (bool, error) {
	fd, closeFunc, err := ttyFd(tty)
	if err != nil {
		return false, err
	}
	if closeFunc != nil {
		defer func() { _ = closeFunc() }()
	}
	tio, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	if err != nil {
		return false, wrapSysErr(err)
	}
	return tio.Lflag&(unix.ICANON|unix.ECHO|unix.ISIG) == 0, nil
}

// sysMakeRaw applies raw mode and returns the restore. A descriptor
// opened here stays open until the restore runs, the attributes must
// be written back through it.
func sysMakeRaw(tty TTY) (restore func() error, _ error) {
	var fd uintptr
	var closeFunc func() error
	if f, ok := tty.(fder); ok {
		fd = f.Fd()
	} else {
		f, err := openTTYDev(tty.TTYDevName())
		if err != nil {
			return nil, err
		}
		fd = f.Fd()
		closeFunc = f.Close
	}
	tio, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	if err != nil {
		if closeFunc != nil {
			_ = closeFunc()
		}
		return nil, wrapSysErr(err)
	}
	saved := *tio
	// cfmakeraw(3)
	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	tio.Oflag &^= unix.OPOST
	tio.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Cflag &^= unix.CSIZE | unix.PARENB
	tio.Cflag |= unix.CS8
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(int(fd), ioctlWriteTermios, tio); err != nil {
		if closeFunc != nil {
			_ = closeFunc()
		}
		return nil, wrapSysErr(err)
	}
	return func() error {
		errSet := unix.IoctlSetTermios(int(fd), ioctlWriteTermios, &saved)
		var errClose error
		if closeFunc != nil {
			errClose = closeFunc()
		}
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
		case unix.ENOTTY, unix.ENXIO, unix.ENODEV:
			return errors.Join(consts.ErrNotATerminal, err)
		}
	}
	return errors.New(err)
}
