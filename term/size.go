package term

import (
	"github.com/srlehn/termctl/internal/errors"
)

// Size is a terminal size in character cells and, where the platform
// reports it, in pixels. Pixel fields are zero otherwise.
type Size struct {
	Width  uint16
	Height uint16

	PixelWidth  uint16
	PixelHeight uint16
}

// GetSize queries the current size of the terminal behind tty. The
// size is queried anew on every call, there is no caching and no
// fallback value. A handle not backed by a terminal device yields
// ErrNotATerminal.
func GetSize(tty TTY) (Size, error) {
	if err := errors.NilParam(tty); err != nil {
		return Size{}, err
	}
	// TIOCGWINSZ ioctl call
	// http://www.delorie.com/djgpp/doc/libc/libc_495.html
	if szr, ok := tty.(sizePixeler); ok {
		cw, ch, pw, ph, err := szr.SizePixel()
		if err == nil && cw >= 0 && ch >= 0 && pw >= 0 && ph >= 0 {
			return Size{
				Width:       uint16(cw),
				Height:      uint16(ch),
				PixelWidth:  uint16(pw),
				PixelHeight: uint16(ph),
			}, nil
		}
	}
	return sysSize(tty)
}
