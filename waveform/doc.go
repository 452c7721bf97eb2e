// SPDX-License-Identifier: EPL-2.0

// Package waveform draws a mipmap.
//
// Columns samples one min/max pair per output column at any zoom, picking
// the level from the frames-per-column ratio. Text and Image turn the
// columns into a character grid or an anti-aliased raster (rasterized with
// golang.org/x/image/vector), and WritePNG encodes the raster.
//
//	cols := waveform.Columns(m, waveform.View{Width: 800})
//	style := waveform.DefaultStyle()
//	style.Limit = 1 + float32(m.MaxSourceClip())
//	err := waveform.WritePNG(f, cols, style)
package waveform
