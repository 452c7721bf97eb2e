// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/ik5/audmip/mipmap"

// Column is the amplitude range drawn in one output column.
type Column struct {
	Min, Max float32
}

// View selects the part of a mipmap to render.
type View struct {
	Channel mipmap.ChannelIdx
	// Offset is the level-0 frame at the left edge.
	Offset float32
	// FramesPerColumn is the zoom. Zero or less fits the frames from
	// Offset to the end into Width columns.
	FramesPerColumn float32
	// Width is the number of columns.
	Width int
}

// Columns reads one interpolated min/max pair per column. The level is
// chosen from the zoom with BinSizeToLOD, so the cost per column does not
// depend on it. Columns past the end of the mipmap are silent.
func Columns[R mipmap.Rep](m *mipmap.Mipmap[R], v View) []Column {
	if v.Width <= 0 {
		return nil
	}

	frames := float32(m.FrameCount())
	offset := max(v.Offset, 0)
	fpc := v.FramesPerColumn
	if fpc <= 0 {
		fpc = max((frames-offset)/float32(v.Width), 1)
	}
	lod := m.BinSizeToLOD(fpc)

	cols := make([]Column, v.Width)
	for i := range cols {
		frame := offset + float32(i)*fpc
		if frame >= frames {
			break
		}
		cols[i].Min, cols[i].Max = m.ReadFloat(lod, v.Channel, frame)
	}

	return cols
}
