package term

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReceiver(w *resizeWatch) *ResizeReceiver {
	_, seq, _ := w.state()
	return &ResizeReceiver{w: w, seen: seq}
}

func TestResizeReceiverBroadcast(t *testing.T) {
	w := newResizeWatch(Size{Width: 80, Height: 24})
	r1 := newTestReceiver(w)
	r2 := newTestReceiver(w)

	go w.publish(Size{Width: 100, Height: 30})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sz1, err := r1.Changed(ctx)
	require.NoError(t, err)
	sz2, err := r2.Changed(ctx)
	require.NoError(t, err)

	assert.Equal(t, Size{Width: 100, Height: 30}, sz1)
	assert.Equal(t, sz1, sz2)
}

func TestResizeReceiverCoalesces(t *testing.T) {
	w := newResizeWatch(Size{Width: 80, Height: 24})
	r := newTestReceiver(w)

	w.publish(Size{Width: 81, Height: 24})
	w.publish(Size{Width: 82, Height: 24})
	w.publish(Size{Width: 83, Height: 24})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sz, err := r.Changed(ctx)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 83, Height: 24}, sz)

	// the three publishes count as one observation
	ctxShort, cancelShort := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelShort()
	_, err = r.Changed(ctxShort)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResizeReceiverCancel(t *testing.T) {
	w := newResizeWatch(Size{Width: 80, Height: 24})
	r := newTestReceiver(w)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := r.Changed(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResizeReceiverLatest(t *testing.T) {
	w := newResizeWatch(Size{Width: 80, Height: 24})
	r := newTestReceiver(w)

	assert.Equal(t, Size{Width: 80, Height: 24}, r.Latest())

	w.publish(Size{Width: 90, Height: 25})
	assert.Equal(t, Size{Width: 90, Height: 25}, r.Latest())

	// Latest must not consume the pending change
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sz, err := r.Changed(ctx)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 90, Height: 25}, sz)
}

func TestResizeReceiverIndependentMarkers(t *testing.T) {
	w := newResizeWatch(Size{Width: 80, Height: 24})
	r1 := newTestReceiver(w)

	w.publish(Size{Width: 100, Height: 30})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sz1, err := r1.Changed(ctx)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 100, Height: 30}, sz1)

	// a receiver created after the publish has nothing pending
	r2 := newTestReceiver(w)
	ctxShort, cancelShort := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelShort()
	_, err = r2.Changed(ctxShort)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// but r1 consuming did not eat r2's next change
	go w.publish(Size{Width: 101, Height: 31})
	sz2, err := r2.Changed(ctx)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 101, Height: 31}, sz2)
}
