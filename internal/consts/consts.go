package consts

import (
	"errors"
)

var (
	ErrNilReceiver  = errors.New(`nil receiver`)
	ErrNilParam     = errors.New(`nil parameter`)
	ErrNilTTY       = errors.New(`nil tty`)
	ErrNotATerminal = errors.New(`not a terminal`)
)
