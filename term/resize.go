package term

import (
	"context"
	"sync"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/internal/consts"
	"github.com/srlehn/termctl/internal/errors"
)

// resizeWatch is the process-wide slot holding the latest size. The
// watcher goroutine is the only publisher; waking is done by closing
// the current wait channel, so a slow receiver only ever observes
// the newest value.
type resizeWatch struct {
	mu   sync.Mutex
	seq  uint64
	size Size
	ch   chan struct{}
}

var (
	resizeOnce     sync.Once
	resizeWatcher  *resizeWatch
	resizeSetupErr error
)

func newResizeWatch(sz Size) *resizeWatch {
	return &resizeWatch{size: sz, ch: make(chan struct{})}
}

// publish never fails.
func (w *resizeWatch) publish(sz Size) {
	w.mu.Lock()
	w.size = sz
	w.seq++
	close(w.ch)
	w.ch = make(chan struct{})
	w.mu.Unlock()
}

func (w *resizeWatch) state() (Size, uint64, <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size, w.seq, w.ch
}

func defaultDev() TTY { return ttyDevName(internal.DefaultTTYDevice()) }

// OnResize returns a receiver observing terminal size changes. The
// first call queries the current size and installs the OS watcher;
// the watcher stays installed for the life of the process. A failed
// installation is sticky and reported to every caller.
//
// Each receiver is independent, all of them observe every change
// (broadcast, not queue). Changes between two observations of a slow
// receiver are coalesced into the latest value.
func OnResize() (*ResizeReceiver, error) {
	resizeOnce.Do(func() {
		sz, err := sysSize(defaultDev())
		if err != nil {
			resizeSetupErr = err
			return
		}
		w := newResizeWatch(sz)
		if err := watchResizeEvents(w); err != nil {
			resizeSetupErr = err
			return
		}
		resizeWatcher = w
	})
	if resizeSetupErr != nil {
		return nil, resizeSetupErr
	}
	w := resizeWatcher
	_, seq, _ := w.state()
	return &ResizeReceiver{w: w, seen: seq}, nil
}

// ResizeReceiver observes terminal size changes published by the
// process-wide watcher. Not safe for concurrent use by multiple
// goroutines; create one receiver per consumer instead.
type ResizeReceiver struct {
	w    *resizeWatch
	seen uint64
}

// Changed blocks until a size newer than the last one observed
// through this receiver was published, then returns it. Abandoning
// the wait via ctx affects neither the watcher nor other receivers.
func (r *ResizeReceiver) Changed(ctx context.Context) (Size, error) {
	if r == nil || r.w == nil {
		return Size{}, errors.New(consts.ErrNilReceiver)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		sz, seq, ch := r.w.state()
		if seq != r.seen {
			r.seen = seq
			return sz, nil
		}
		select {
		case <-ctx.Done():
			return Size{}, errors.New(ctx.Err())
		case <-ch:
		}
	}
}

// Latest returns the most recently published size without waiting.
// It does not advance the receiver's observation marker.
func (r *ResizeReceiver) Latest() Size {
	if r == nil || r.w == nil {
		return Size{}
	}
	sz, _, _ := r.w.state()
	return sz
}
