//go:build unix

package term

import (
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/srlehn/termctl/internal/logx"
)

// watchResizeEvents relays SIGWINCH into the shared slot. SIGWINCH
// is only delivered to foreground processes of the terminal.
func watchResizeEvents(w *resizeWatch) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)
	go func() {
		for sig := range sigs {
			if sig != unix.SIGWINCH {
				continue
			}
			sz, err := sysSize(defaultDev())
			if logx.IsErr(err, logger(), slog.LevelWarn, `op`, `resize size query`) {
				continue
			}
			w.publish(sz)
		}
	}()
	return nil
}
