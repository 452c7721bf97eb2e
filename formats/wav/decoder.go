// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audmip/audio"
)

// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const formatPCM = 1

// Info describes a WAV stream without decoding its samples.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int64
}

type Decoder struct{}

// Decode parses the WAV header from r and returns a source over its PCM
// data. Inputs that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec, info, err := open(rs)
	if err != nil {
		return nil, err
	}

	var pcm audio.PCMReader = dec
	if info.BitDepth == 8 {
		pcm = unsigned8{dec}
	}

	src := audio.NewPCMSource(pcm, info.SampleRate, info.Channels, info.BitDepth).
		WithFrames(info.Frames)
	if c, ok := r.(io.Closer); ok {
		src.WithCloser(c)
	}

	return src, nil
}

// ReadInfo returns the format of the WAV stream in rs and leaves rs
// positioned at the start of the sample data.
func ReadInfo(rs io.ReadSeeker) (Info, error) {
	_, info, err := open(rs)
	return info, err
}

func open(rs io.ReadSeeker) (*wav.Decoder, Info, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, Info{}, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, Info{}, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	info := Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}
	switch info.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, Info{}, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitDepth)
	}
	if info.Channels == 0 {
		return nil, Info{}, ErrNoChannels
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, Info{}, fmt.Errorf("locating wav data chunk: %w", err)
	}
	info.Frames = dec.PCMLen() / int64(info.Channels*info.BitDepth/8)

	return dec, info, nil
}

// unsigned8 recenters 8-bit WAV samples, which are stored unsigned, around
// zero.
type unsigned8 struct {
	*wav.Decoder
}

func (u unsigned8) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n, err := u.Decoder.PCMBuffer(buf)
	for i := range n {
		buf.Data[i] -= 128
	}

	return n, err
}
