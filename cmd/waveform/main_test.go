// SPDX-License-Identifier: EPL-2.0

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audmip/audio"
	"github.com/ik5/audmip/internal/audiotest"
)

func writeFixture(t *testing.T, name string) string {
	t.Helper()

	samples := make([]int, 2*4000)
	wave := audiotest.Sine(8000, 50, 0.9)
	for f := range 4000 {
		v := int(wave(f, 0) * 32767)
		samples[2*f], samples[2*f+1] = v, v/2
	}

	data, err := audiotest.EncodeWAV(8000, 2, 16, samples)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func defaultOptions() options {
	return options{res: 2, width: 64}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "tone.WAV")

	o := defaultOptions()
	m, err := load(o, path)
	require.NoError(t, err)
	assert.EqualValues(t, 2, m.ChannelCount())
	assert.EqualValues(t, 4000, m.FrameCount())

	o.mono = true
	o.clip = -1
	m, err = load(o, path)
	require.NoError(t, err)
	assert.EqualValues(t, 1, m.ChannelCount())
	assert.Zero(t, m.MaxSourceClip())
}

func TestRun_PNG(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "tone.wav")
	out := filepath.Join(t.TempDir(), "tone.png")

	o := defaultOptions()
	o.png = out
	o.channel = 1
	require.NoError(t, run(o, []string{path}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "tone.wav")

	o := defaultOptions()
	o.channel = 2
	assert.ErrorContains(t, run(o, []string{path}), "channel 2 out of range")

	o = defaultOptions()
	o.res = 300
	assert.Error(t, run(o, []string{path}))

	o = defaultOptions()
	assert.ErrorIs(t, run(o, []string{"notes.txt"}), audio.ErrUnknownFormat)

	_, err := load(defaultOptions(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	o = defaultOptions()
	o.capture = 1
	o.clip = -1
	_, err = record(o)
	assert.Error(t, err)
}
