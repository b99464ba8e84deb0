//go:build !unix && !windows

package term

import (
	"github.com/srlehn/termctl/internal/errors"
)

func sysSize(_ TTY) (Size, error) { return Size{}, errors.New(ErrUnsupported) }

func sysIsRaw(_ TTY) (bool, error) { return false, errors.New(ErrUnsupported) }

func sysMakeRaw(_ TTY) (func() error, error) { return nil, errors.New(ErrUnsupported) }
