// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audmip/audio"
)

type Decoder struct{}

// Decode parses the AIFF header from r and returns a source over its sound
// data. Inputs that cannot seek are buffered in memory first. Closing the
// source closes r when r is an io.Closer.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	src := audio.NewPCMSource(dec, format.SampleRate, format.NumChannels, bitDepth).
		WithFrames(int64(dec.NumSampleFrames))
	if c, ok := r.(io.Closer); ok {
		src.WithCloser(c)
	}

	return src, nil
}
