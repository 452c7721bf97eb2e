// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// EncodeWAV returns a PCM WAV file holding the interleaved integer samples.
func EncodeWAV(sampleRate, channels, bitDepth int, samples []int) ([]byte, error) {
	f := &MemFile{}
	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finishing wav: %w", err)
	}

	return f.Bytes(), nil
}

// MemFile is an in-memory io.ReadWriteSeeker.
type MemFile struct {
	data []byte
	off  int64
}

func NewMemFile(data []byte) *MemFile { return &MemFile{data: data} }

func (f *MemFile) Bytes() []byte { return f.data }

func (f *MemFile) Read(p []byte) (int, error) {
	if f.off >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.off:])
	f.off += int64(n)

	return n, nil
}

func (f *MemFile) Write(p []byte) (int, error) {
	if end := f.off + int64(len(p)); end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	n := copy(f.data[f.off:], p)
	f.off += int64(n)

	return n, nil
}

func (f *MemFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = f.off + offset
	case io.SeekEnd:
		abs = int64(len(f.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("negative position")
	}
	f.off = abs

	return abs, nil
}

// EncodeAIFF returns an AIFF file holding the interleaved integer samples.
func EncodeAIFF(sampleRate, channels, bitDepth int, samples []int) ([]byte, error) {
	f := &MemFile{}
	enc := aiff.NewEncoder(f, sampleRate, bitDepth, channels)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("encoding aiff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finishing aiff: %w", err)
	}

	return f.Bytes(), nil
}
