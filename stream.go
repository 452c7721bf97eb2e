// SPDX-License-Identifier: EPL-2.0

package audmip

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pion/logging"

	"github.com/ik5/audmip/audio"
	internallog "github.com/ik5/audmip/internal/logging"
	"github.com/ik5/audmip/mipmap"
)

// Streamer fills a preallocated mipmap from a source one chunk at a time,
// updating the levels over each chunk as it lands. Pump and Run are
// synchronous: the mipmap may be read between calls, from the calling
// goroutine or one synchronized with it, but not while they run.
type Streamer[R mipmap.Rep] struct {
	m   *mipmap.Mipmap[R]
	src audio.Source
	pos mipmap.FrameIdx
	buf []float32
	log logging.LeveledLogger
}

// NewStreamer returns a Streamer writing src into m from frame 0.
func NewStreamer[R mipmap.Rep](m *mipmap.Mipmap[R], src audio.Source, opts Options) (*Streamer[R], error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, audio.ErrNoChannels
	}
	if mipmap.ChannelCount(channels) != m.ChannelCount() {
		return nil, fmt.Errorf("%w: source has %d, mipmap has %d", ErrChannelMismatch, channels, m.ChannelCount())
	}

	log := opts.Logger
	if log == nil {
		log = internallog.NewLogger("stream")
	}

	return &Streamer[R]{
		m:   m,
		src: src,
		buf: make([]float32, opts.chunkFrames()*channels),
		log: log,
	}, nil
}

// Position is the first frame the next Pump will write.
func (s *Streamer[R]) Position() mipmap.FrameIdx { return s.pos }

// Pump reads one chunk from the source, writes it at the current position
// and updates the levels over it. It returns the region written, which may
// be empty, together with io.EOF once the source is exhausted or
// ErrMipmapFull when the mipmap has no room left.
func (s *Streamer[R]) Pump() (mipmap.Region, error) {
	channels := uint64(s.src.Channels())
	room := uint64(s.m.FrameCount()) - uint64(s.pos)
	if room == 0 {
		// A source that ends exactly where the mipmap does is not an overflow.
		n, err := s.src.ReadSamples(s.buf[:channels])
		if n == 0 && errors.Is(err, io.EOF) {
			return mipmap.Region{Beg: s.pos, End: s.pos}, io.EOF
		}
		return mipmap.Region{Beg: s.pos, End: s.pos}, ErrMipmapFull
	}

	want := min(uint64(len(s.buf))/channels, room) * channels

	n, err := s.src.ReadSamples(s.buf[:want])
	if err != nil && !errors.Is(err, io.EOF) {
		return mipmap.Region{Beg: s.pos, End: s.pos}, fmt.Errorf("reading source: %w", err)
	}

	written := s.m.WriteInterleaved(s.pos, s.buf[:n])
	region := mipmap.Region{Beg: s.pos, End: s.pos + mipmap.FrameIdx(written)}
	if !region.Empty() {
		s.m.Update(region)
	}
	s.pos = region.End

	return region, err
}

// Run pumps until the source ends, the mipmap is full or ctx is done, and
// returns the number of frames written. Reaching the end of the source is
// not an error.
func (s *Streamer[R]) Run(ctx context.Context) (mipmap.FrameCount, error) {
	start := s.pos
	empty := 0
	for {
		if err := ctx.Err(); err != nil {
			return mipmap.FrameCount(s.pos - start), err
		}

		region, err := s.Pump()
		switch {
		case errors.Is(err, io.EOF):
			s.log.Debugf("source ended at frame %d", s.pos)
			return mipmap.FrameCount(s.pos - start), nil
		case errors.Is(err, ErrMipmapFull):
			s.log.Warnf("mipmap full at frame %d, dropping the rest of the source", s.pos)
			return mipmap.FrameCount(s.pos - start), err
		case err != nil:
			return mipmap.FrameCount(s.pos - start), err
		}

		if !region.Empty() {
			empty = 0
		} else if empty++; empty >= maxEmptyReads {
			return mipmap.FrameCount(s.pos - start), fmt.Errorf("reading source: %w", io.ErrNoProgress)
		}
	}
}
