// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ik5/audmip/mipmap"
)

// Writer appends captured samples to a mipmap and hands the written regions
// to an updater over a channel. Its methods other than Regions, Overrun and
// Full must be called from a single goroutine, normally the device
// callback. They never block and never allocate once the scratch buffer
// has grown to the device period.
type Writer[R mipmap.Rep] struct {
	m       *mipmap.Mipmap[R]
	regions chan mipmap.Region

	pos     mipmap.FrameIdx
	pending mipmap.FrameIdx // start of the region not yet queued
	scratch []float32

	overrun  atomic.Uint64
	full     chan struct{}
	fullOnce sync.Once
}

// NewWriter returns a Writer filling m from frame 0 with room for queue
// pending regions.
func NewWriter[R mipmap.Rep](m *mipmap.Mipmap[R], queue int) *Writer[R] {
	return &Writer[R]{
		m:       m,
		regions: make(chan mipmap.Region, queue),
		full:    make(chan struct{}),
	}
}

// Regions delivers written regions in order. It is closed by Close.
func (w *Writer[R]) Regions() <-chan mipmap.Region { return w.regions }

// Full is closed once the mipmap has no room left.
func (w *Writer[R]) Full() <-chan struct{} { return w.full }

// Overrun is the number of frames discarded because the mipmap was full.
func (w *Writer[R]) Overrun() uint64 { return w.overrun.Load() }

// Position is the next frame to be written.
func (w *Writer[R]) Position() mipmap.FrameIdx { return w.pos }

// WriteBytes decodes native-endian float32 samples, the layout the capture
// device delivers, and writes them.
func (w *Writer[R]) WriteBytes(p []byte) mipmap.FrameCount {
	n := len(p) / 4
	if cap(w.scratch) < n {
		w.scratch = make([]float32, n)
	}
	samples := w.scratch[:n]
	for i := range samples {
		samples[i] = math.Float32frombits(binary.NativeEndian.Uint32(p[4*i:]))
	}

	return w.Write(samples)
}

// Write appends interleaved samples at the current position and queues the
// region written so far. When the queue is full the region is kept and
// merged with the next one.
func (w *Writer[R]) Write(samples []float32) mipmap.FrameCount {
	channels := uint64(w.m.ChannelCount())
	frames := uint64(len(samples)) / channels
	room := uint64(w.m.FrameCount()) - uint64(w.pos)

	if frames > room {
		w.overrun.Add(frames - room)
		frames = room
	}
	if frames == 0 {
		if room == 0 {
			w.markFull()
		}
		return 0
	}

	written := w.m.WriteInterleaved(w.pos, samples[:frames*channels])
	w.pos += mipmap.FrameIdx(written)

	select {
	case w.regions <- mipmap.Region{Beg: w.pending, End: w.pos}:
		w.pending = w.pos
	default:
	}

	if uint64(w.pos) == uint64(w.m.FrameCount()) {
		w.markFull()
	}

	return written
}

// Close queues any region still pending, blocking if needed, and closes
// the channel returned by Regions. The writer must not be used afterwards.
func (w *Writer[R]) Close() {
	if w.pending < w.pos {
		w.regions <- mipmap.Region{Beg: w.pending, End: w.pos}
		w.pending = w.pos
	}
	close(w.regions)
}

func (w *Writer[R]) markFull() {
	w.fullOnce.Do(func() { close(w.full) })
}
