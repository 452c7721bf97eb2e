// SPDX-License-Identifier: EPL-2.0

package buffer

import "fmt"

// Limits that protect against allocations caused by an underflowed count.
const (
	SaneChannelCount = 1024
	SaneFrameCount   = 44100 * 604800 // one week of audio at 44.1kHz
)

// ScanFunc receives a slice aliasing frames [start, start+len(buf)) of one
// channel and returns how many frames it processed.
type ScanFunc[T any] func(buf []T, start uint64) uint64

// ChannelScanFunc is ScanFunc with the channel index passed through.
type ChannelScanFunc[T any] func(buf []T, ch, start uint64) uint64

// Data is a channels × frames store of T.
type Data[T any] struct {
	chans [][]T
}

// New allocates channels × frames elements, all set to fill.
func New[T any](channels, frames uint64, fill T) (*Data[T], error) {
	d := &Data[T]{}
	if err := d.Resize(channels, frames, fill); err != nil {
		return nil, err
	}

	return d, nil
}

// Resize reallocates the store. Existing contents are discarded and every
// element is set to fill.
func (d *Data[T]) Resize(channels, frames uint64, fill T) error {
	if channels > SaneChannelCount {
		return fmt.Errorf("%w: %d", ErrTooManyChannels, channels)
	}
	if frames > SaneFrameCount {
		return fmt.Errorf("%w: %d", ErrTooManyFrames, frames)
	}

	d.chans = make([][]T, channels)
	for c := range d.chans {
		d.chans[c] = make([]T, frames)
	}
	d.Fill(fill)

	return nil
}

func (d *Data[T]) ChannelCount() uint64 { return uint64(len(d.chans)) }

func (d *Data[T]) FrameCount() uint64 {
	if len(d.chans) == 0 {
		return 0
	}

	return uint64(len(d.chans[0]))
}

// Fill sets every element to v.
func (d *Data[T]) Fill(v T) {
	for _, ch := range d.chans {
		for i := range ch {
			ch[i] = v
		}
	}
}

// At returns the element at (ch, fr). It panics if either index is out of range.
func (d *Data[T]) At(ch, fr uint64) T {
	return d.channel(ch)[d.checkFrame(fr)]
}

// Set stores v at (ch, fr). It panics if either index is out of range.
func (d *Data[T]) Set(ch, fr uint64, v T) {
	d.channel(ch)[d.checkFrame(fr)] = v
}

// Channel returns the backing slice of channel ch.
func (d *Data[T]) Channel(ch uint64) []T {
	return d.channel(ch)
}

func (d *Data[T]) channel(ch uint64) []T {
	if ch >= uint64(len(d.chans)) {
		panic(fmt.Sprintf("buffer: channel %d out of range [0,%d)", ch, len(d.chans)))
	}

	return d.chans[ch]
}

func (d *Data[T]) checkFrame(fr uint64) uint64 {
	if n := d.FrameCount(); fr >= n {
		panic(fmt.Sprintf("buffer: frame %d out of range [0,%d)", fr, n))
	}

	return fr
}

// span clamps [start, start+count) to the channel length.
func (d *Data[T]) span(ch, start, count uint64) ([]T, bool) {
	if start > SaneFrameCount {
		panic(fmt.Sprintf("buffer: frame start %d is insane", start))
	}

	data := d.channel(ch)
	n := uint64(len(data))
	if start >= n {
		return nil, false
	}
	if count > n-start {
		count = n - start
	}

	return data[start : start+count], true
}

// Read passes up to count frames of channel ch starting at start to fn. The
// range is clamped to the channel length; nothing is read when start is past
// the end. buf aliases the storage, so fn must not modify it.
func (d *Data[T]) Read(ch, start, count uint64, fn ScanFunc[T]) uint64 {
	return d.scan(ch, start, count, fn)
}

// Write is Read for filling: fn writes buf in place.
func (d *Data[T]) Write(ch, start, count uint64, fn ScanFunc[T]) uint64 {
	return d.scan(ch, start, count, fn)
}

// scan hands the clamped span of channel ch to fn without copying.
func (d *Data[T]) scan(ch, start, count uint64, fn ScanFunc[T]) uint64 {
	buf, ok := d.span(ch, start, count)
	if !ok {
		return 0
	}

	return fn(buf, start)
}

// ReadAll scans every channel in order. It panics if fn reports a different
// frame count for different channels.
func (d *Data[T]) ReadAll(start, count uint64, fn ChannelScanFunc[T]) uint64 {
	return d.scanAll("read", start, count, fn)
}

// WriteAll is the writing counterpart of ReadAll.
func (d *Data[T]) WriteAll(start, count uint64, fn ChannelScanFunc[T]) uint64 {
	return d.scanAll("write", start, count, fn)
}

func (d *Data[T]) scanAll(op string, start, count uint64, fn ChannelScanFunc[T]) uint64 {
	var done uint64
	for ch := range d.ChannelCount() {
		n := d.scan(ch, start, count, func(buf []T, start uint64) uint64 {
			return fn(buf, ch, start)
		})
		if ch == 0 {
			done = n
		} else if n != done {
			panic(fmt.Sprintf("buffer: %s frame count mismatch (%d != %d)", op, done, n))
		}
	}

	return done
}
