//go:build !unix && !windows

package term

import (
	"github.com/srlehn/termctl/internal/errors"
)

func watchResizeEvents(_ *resizeWatch) error { return errors.New(ErrUnsupported) }
