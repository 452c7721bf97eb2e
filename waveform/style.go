// SPDX-License-Identifier: EPL-2.0

package waveform

import "image/color"

// Style controls raster output.
type Style struct {
	Height     int
	Limit      float32 // amplitude at the top and bottom edges; 0 means 1
	Background color.Color
	Foreground color.Color
	Axis       color.Color // zero line; nil draws none
}

func DefaultStyle() Style {
	return Style{
		Height:     200,
		Limit:      1,
		Background: color.White,
		Foreground: color.RGBA{R: 0x1f, G: 0x5f, B: 0x9f, A: 0xff},
		Axis:       color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	}
}

func (s Style) limit() float32 {
	if !(s.Limit > 0) {
		return 1
	}

	return s.Limit
}
