// SPDX-License-Identifier: EPL-2.0

package mipmap

import "github.com/ik5/audmip/buffer"

// level0 holds the quantized samples as written by the caller.
type level0[R Rep] struct {
	st    *buffer.Data[R]
	valid Region
}

func (l *level0[R]) read(ch ChannelIdx, fr FrameIdx) R {
	if l.valid.Empty() {
		return ValueSilent[R]()
	}
	fr = min(fr, FrameIdx(l.st.FrameCount()-1))
	if !l.valid.Contains(fr) {
		return ValueSilent[R]()
	}

	return l.st.At(uint64(ch), uint64(fr))
}

// lod is one aggregate level. Bin i summarizes level-0 frames
// [i*binSize, (i+1)*binSize).
type lod[R Rep] struct {
	index   LODIndex
	binSize uint64
	st      *buffer.Data[MinMax[R]]
	valid   Region
}

func makeLOD[R Rep](index LODIndex, channels ChannelCount, frames FrameCount, binSize uint64) (lod[R], error) {
	st, err := buffer.New(uint64(channels), uint64(frames), Silent[R]())
	if err != nil {
		return lod[R]{}, err
	}

	return lod[R]{index: index, binSize: binSize, st: st}, nil
}

func (l *lod[R]) frameCount() FrameCount { return FrameCount(l.st.FrameCount()) }

func (l *lod[R]) read(ch ChannelIdx, fr FrameIdx) MinMax[R] {
	if l.valid.Empty() {
		return Silent[R]()
	}
	fr = min(fr, FrameIdx(l.st.FrameCount()-1))
	if !l.valid.Contains(fr) {
		return Silent[R]()
	}

	return l.st.At(uint64(ch), uint64(fr))
}

// levelFrames returns the length of level i (0 being the sample store).
func (m *Mipmap[R]) levelFrames(i LODIndex) FrameCount {
	if i == 0 {
		return m.FrameCount()
	}

	return m.lods[i-1].frameCount()
}

// fold recomputes one bin of l from the base-sized window of the level
// below. Positions of the lower level that hold no valid data contribute
// the silent value.
func (m *Mipmap[R]) fold(l *lod[R], ch ChannelIdx, fr FrameIdx) {
	lo, hi := ValueMax[R](), ValueMin[R]()

	below := l.index - 1
	beg := uint64(fr) * m.base
	end := min(beg+m.base, uint64(m.levelFrames(below)))
	for i := beg; i < end; i++ {
		mm := m.readExact(below, ch, FrameIdx(i))
		lo = min(lo, mm.Min)
		hi = max(hi, mm.Max)
	}

	l.st.Set(uint64(ch), uint64(fr), MinMax[R]{Min: lo, Max: hi})
}

// generate refreshes every bin of l inside region and marks it valid.
func (m *Mipmap[R]) generate(l *lod[R], region Region) {
	l.valid = l.valid.Union(region)
	for ch := range ChannelIdx(m.ChannelCount()) {
		for fr := region.Beg; fr < region.End; fr++ {
			m.fold(l, ch, fr)
		}
	}
}
