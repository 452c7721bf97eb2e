// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Image rasterizes cols into an image one pixel wide per column. Each
// column is filled between its min and max, at least one pixel tall, with
// anti-aliased edges.
func Image(cols []Column, style Style) *image.RGBA {
	w, h := len(cols), max(style.Height, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 {
		return img
	}

	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	limit := style.limit()
	toY := func(v float32) float32 {
		v = min(max(v, -limit), limit)
		return (limit - v) / (2 * limit) * float32(h)
	}

	if style.Axis != nil {
		axis := image.Rect(0, h/2, w, h/2+1)
		draw.Draw(img, axis, image.NewUniform(style.Axis), image.Point{}, draw.Src)
	}

	z := vector.NewRasterizer(w, h)
	for x, c := range cols {
		top, bottom := toY(c.Max), toY(c.Min)
		if bottom-top < 1 {
			mid := (top + bottom) / 2
			top, bottom = mid-0.5, mid+0.5
		}
		top, bottom = max(top, 0), min(bottom, float32(h))

		x0, x1 := float32(x), float32(x+1)
		z.MoveTo(x0, top)
		z.LineTo(x1, top)
		z.LineTo(x1, bottom)
		z.LineTo(x0, bottom)
		z.ClosePath()
	}
	z.DrawOp = draw.Over
	z.Draw(img, img.Bounds(), image.NewUniform(style.Foreground), image.Point{})

	return img
}

// WritePNG renders cols with Image and encodes the result as PNG.
func WritePNG(w io.Writer, cols []Column, style Style) error {
	if err := png.Encode(w, Image(cols, style)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}
