// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakePCM serves data in reads of at most chunk samples.
type fakePCM struct {
	data  []int
	pos   int
	chunk int
	err   error
}

func (f *fakePCM) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 2, SampleRate: 8000}
}

func (f *fakePCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	n := copy(buf.Data, f.data[f.pos:])
	if f.chunk > 0 {
		n = min(n, f.chunk)
	}
	f.pos += n

	return n, nil
}

type closeCounter struct {
	calls int
	err   error
}

func (c *closeCounter) Close() error {
	c.calls++
	return c.err
}

func TestPCMScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{12, 32768},
		{0, 32768},
	}

	for _, tt := range tests {
		if got := PCMScale(tt.bitDepth); got != tt.want {
			t.Errorf("PCMScale(%d) = %v, want %v", tt.bitDepth, got, tt.want)
		}
	}
}

func TestIntsToFloats(t *testing.T) {
	t.Parallel()

	dst := make([]float32, 3)
	n := IntsToFloats(dst, []int{-32768, 0, 16384, 32767}, 16)
	if n != 3 {
		t.Fatalf("IntsToFloats() = %d, want 3", n)
	}

	want := []float32{-1, 0, 0.5}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestPeak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float32
		want    float32
	}{
		{"empty", nil, 0},
		{"positive", []float32{0.1, 0.7, 0.3}, 0.7},
		{"negative wins", []float32{0.5, -0.9, 0.2}, 0.9},
		{"over full scale", []float32{-1.5, 1.25}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Peak(tt.samples); math.Abs(float64(got-tt.want)) > 1e-7 {
				t.Errorf("Peak() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPCMSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := NewPCMSource(&fakePCM{data: []int{0, 64, -128, 127, 32, -32}}, 8000, 2, 8)

	if src.SampleRate() != 8000 || src.Channels() != 2 || src.BitDepth() != 8 {
		t.Fatalf("unexpected format %d Hz %d ch %d bit", src.SampleRate(), src.Channels(), src.BitDepth())
	}

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	want := []float32{0, 0.5, -1, 127.0 / 128}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], w)
		}
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("short read = (%d, %v), want (2, EOF)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("read past end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestPCMSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := NewPCMSource(&fakePCM{data: make([]int, 8)}, 8000, 2, 16)

	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestPCMSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewPCMSource(&fakePCM{err: boom}, 8000, 2, 16)

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped boom", err)
	}
}

func TestPCMSource_BufSize(t *testing.T) {
	t.Parallel()

	src := NewPCMSource(&fakePCM{data: make([]int, 10000)}, 8000, 2, 16)
	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() before read = %d, want 4096", got)
	}

	if _, err := src.ReadSamples(make([]float32, 8192)); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if got := src.BufSize(); got != 8192 {
		t.Errorf("BufSize() after read = %d, want 8192", got)
	}
}

func TestPCMSource_Close(t *testing.T) {
	t.Parallel()

	if err := NewPCMSource(&fakePCM{}, 8000, 2, 16).Close(); err != nil {
		t.Errorf("Close() without closer error = %v", err)
	}

	c := &closeCounter{}
	if err := NewPCMSource(&fakePCM{}, 8000, 2, 16).WithCloser(c).Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if c.calls != 1 {
		t.Errorf("closer called %d times, want 1", c.calls)
	}

	failing := &closeCounter{err: io.ErrClosedPipe}
	if err := NewPCMSource(&fakePCM{}, 8000, 2, 16).WithCloser(failing).Close(); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("Close() error = %v, want ErrClosedPipe", err)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := ReadSeeker(br)
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if rs != io.ReadSeeker(br) {
		t.Error("ReadSeeker() wrapped a reader that can already seek")
	}

	rs, err = ReadSeeker(io.LimitReader(strings.NewReader("hello world"), 5))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, err := io.ReadAll(rs)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(rest) != "ello" {
		t.Errorf("buffered content = %q, want %q", rest, "ello")
	}
}
