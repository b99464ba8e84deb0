//go:build windows

package term

import (
	"time"
)

// no console resize signal on windows, poll the screen buffer info
// and publish on change.
func watchResizeEvents(w *resizeWatch) error {
	go func() {
		last, _, _ := w.state()
		for {
			time.Sleep(time.Second)
			sz, err := sysSize(defaultDev())
			if err != nil {
				continue
			}
			if sz != last {
				last = sz
				w.publish(sz)
			}
		}
	}()
	return nil
}
