// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audmip"
	"github.com/ik5/audmip/internal/audiotest"
	"github.com/ik5/audmip/mipmap"
)

func buildSquare(t *testing.T, frames int, amplitude float32) *mipmap.Mipmap[uint8] {
	t.Helper()

	src := audiotest.NewMockSource(8000, 1, frames, audiotest.Square(100, amplitude))
	m, err := audmip.Build[uint8](src, audmip.DefaultOptions())
	require.NoError(t, err)

	return m
}

func TestColumns_FullScaleSquare(t *testing.T) {
	t.Parallel()

	// 40 columns of 256 frames land exactly on level 4 bins, each of which
	// spans several half periods.
	m := buildSquare(t, 40*256, 1)
	cols := Columns(m, View{Width: 40})
	require.Len(t, cols, 40)

	step := float64(mipmap.Step[uint8](0))
	for i, c := range cols {
		assert.InDelta(t, -1, c.Min, step, "column %d", i)
		assert.InDelta(t, 1, c.Max, step, "column %d", i)
	}
}

func TestColumns_ZoomedIn(t *testing.T) {
	t.Parallel()

	m := buildSquare(t, 10000, 1)

	// One frame per column over the first half period only sees +1.
	cols := Columns(m, View{FramesPerColumn: 1, Width: 40})
	for i, c := range cols {
		assert.InDelta(t, 1, c.Min, 1e-6, "column %d", i)
		assert.InDelta(t, 1, c.Max, 1e-6, "column %d", i)
	}

	// Starting in the second half period only sees -1.
	cols = Columns(m, View{Offset: 55, FramesPerColumn: 1, Width: 40})
	for i, c := range cols {
		assert.InDelta(t, -1, c.Min, 1e-6, "column %d", i)
	}
}

func TestColumns_PastEnd(t *testing.T) {
	t.Parallel()

	m := buildSquare(t, 100, 1)
	cols := Columns(m, View{FramesPerColumn: 10, Width: 20})

	require.Len(t, cols, 20)
	assert.NotEqual(t, Column{}, cols[0])
	for _, c := range cols[10:] {
		assert.Equal(t, Column{}, c)
	}
}

func TestColumns_Empty(t *testing.T) {
	t.Parallel()

	m := buildSquare(t, 100, 1)
	assert.Nil(t, Columns(m, View{}))
}

func TestText(t *testing.T) {
	t.Parallel()

	cols := []Column{{Min: -1, Max: 1}, {Min: 0, Max: 0}, {Min: 0.5, Max: 1}, {Min: -3, Max: -2}}
	want := "" +
		"# # \n" +
		"# # \n" +
		"##  \n" +
		"#  #\n"

	assert.Equal(t, want, Text(cols, 4, 1))
	assert.Empty(t, Text(nil, 4, 1))
	assert.Empty(t, Text(cols, 0, 1))
}

func TestText_Limit(t *testing.T) {
	t.Parallel()

	cols := []Column{{Min: -1, Max: 1}}
	assert.Equal(t, " \n#\n#\n#\n", Text(cols, 4, 2))
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	style.Height = 40
	style.Axis = nil

	cols := make([]Column, 30)
	for i := range 10 {
		cols[i] = Column{Min: -1, Max: 1}
	}

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, cols, style))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 30, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())

	fg := color.RGBAModel.Convert(style.Foreground)
	bg := color.RGBAModel.Convert(style.Background)

	// Full-scale columns are filled top to bottom.
	for y := range 40 {
		assert.Equal(t, fg, color.RGBAModel.Convert(img.At(5, y)), "y=%d", y)
	}
	// Silent columns only touch the rows around the center.
	assert.Equal(t, bg, color.RGBAModel.Convert(img.At(20, 0)))
	assert.Equal(t, bg, color.RGBAModel.Convert(img.At(20, 39)))
	assert.NotEqual(t, bg, color.RGBAModel.Convert(img.At(20, 19)))
}

func TestImage_Axis(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	style.Height = 10
	img := Image([]Column{{Min: 0.9, Max: 1}}, style)

	assert.Equal(t, color.RGBAModel.Convert(style.Axis), color.RGBAModel.Convert(img.At(0, 5)))
	assert.Equal(t, color.RGBAModel.Convert(style.Background), color.RGBAModel.Convert(img.At(0, 8)))
}
