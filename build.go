// SPDX-License-Identifier: EPL-2.0

package audmip

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmip/audio"
	"github.com/ik5/audmip/internal/logging"
	"github.com/ik5/audmip/mipmap"
)

// maxEmptyReads is how many consecutive reads returning nothing are
// tolerated before a source is considered stalled.
const maxEmptyReads = 100

// Build reads src to the end and returns a mipmap over all of it with every
// level generated. src is not closed.
func Build[R mipmap.Rep](src audio.Source, opts Options) (*mipmap.Mipmap[R], error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewLogger("ingest")
	}

	if opts.Mono {
		src = audio.NewMonoMixer(src)
	}
	channels := src.Channels()
	if channels <= 0 {
		return nil, audio.ErrNoChannels
	}

	samples, err := readAll(src, opts.chunkFrames())
	if err != nil {
		return nil, err
	}
	frames := len(samples) / channels

	clip := opts.Clip
	if opts.AutoClip {
		clip = ClipForPeak(audio.Peak(samples))
		log.Debugf("auto clip %.4f", clip)
	}

	m, err := mipmap.New[R](mipmap.ChannelCount(channels), mipmap.FrameCount(frames), opts.Resolution, clip)
	if err != nil {
		return nil, fmt.Errorf("creating mipmap: %w", err)
	}

	m.WriteInterleaved(0, samples)
	m.UpdateAll()

	log.Infof("indexed %d frames x %d channels at %d Hz into %d levels",
		frames, channels, src.SampleRate(), m.LODCount())

	return m, nil
}

// ClipForPeak returns the smallest clip margin that represents peak without
// saturating.
func ClipForPeak(peak float32) mipmap.MaxSourceClip {
	if !(peak > 1) {
		return 0
	}

	return mipmap.MaxSourceClip(peak - 1)
}

// readAll drains src into one interleaved slice, preallocated when src
// reports its length.
func readAll(src audio.Source, chunkFrames int) ([]float32, error) {
	channels := src.Channels()

	var samples []float32
	if sized, ok := src.(audio.Sized); ok && sized.Frames() > 0 {
		samples = make([]float32, 0, sized.Frames()*int64(channels))
	}

	buf := make([]float32, chunkFrames*channels)
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}

		if n > 0 {
			empty = 0
		} else if empty++; empty >= maxEmptyReads {
			return nil, fmt.Errorf("reading source: %w", io.ErrNoProgress)
		}
	}
}
