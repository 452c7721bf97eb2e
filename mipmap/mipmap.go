// SPDX-License-Identifier: EPL-2.0

package mipmap

import (
	"fmt"
	"math"

	"github.com/ik5/audmip/buffer"
)

// Mipmap is a multi-resolution min/max index over quantized audio.
//
// All memory is allocated by New (and Resize). Writing level-0 data with
// Set or one of the Write methods does not touch the other levels; call
// Update over the written region to regenerate them.
//
// There is no locking. At most one mutation (Set, Write*, Update, Clear,
// Resize) may be in flight. Update, Clear and Resize change the valid
// regions every read consults, so a reader must be ordered after the last
// of them (same goroutine, channel receive, WaitGroup) and must finish
// before the next one starts. Reads with no mutation in flight may run
// concurrently. Set and Write* only touch level-0 samples: they may run on
// another goroutine during an Update, as long as they stay out of frames
// the update covers and out of the valid region. Write may be called from
// a real-time audio thread.
type Mipmap[R Rep] struct {
	res  Resolution
	base uint64
	clip MaxSourceClip
	lod0 level0[R]
	lods []lod[R]
}

// New allocates a mipmap for channels × frames samples.
func New[R Rep](channels ChannelCount, frames FrameCount, res Resolution, clip MaxSourceClip) (*Mipmap[R], error) {
	if clip < 0 || clip != clip {
		return nil, fmt.Errorf("%w: %v", ErrNegativeClip, clip)
	}

	m := &Mipmap[R]{
		res:  res,
		base: res.Base(),
		clip: clip,
	}
	if err := m.Resize(channels, frames); err != nil {
		return nil, err
	}

	return m, nil
}

// Resize reallocates every level for the new dimensions. All data and
// validity is discarded.
func (m *Mipmap[R]) Resize(channels ChannelCount, frames FrameCount) error {
	st, err := buffer.New(uint64(channels), uint64(frames), ValueSilent[R]())
	if err != nil {
		return fmt.Errorf("allocating level 0: %w", err)
	}
	m.lod0 = level0[R]{st: st}
	m.lods = nil

	size := uint64(frames)
	binSize := uint64(1)
	for index := LODIndex(1); size > 1; index++ {
		size = ceilDiv(size, m.base)
		binSize *= m.base

		l, err := makeLOD[R](index, channels, FrameCount(size), binSize)
		if err != nil {
			return fmt.Errorf("allocating level %d: %w", index, err)
		}
		m.lods = append(m.lods, l)
	}

	return nil
}

// Clear marks every level as holding no data. Storage is kept.
func (m *Mipmap[R]) Clear() {
	m.lod0.valid = Region{}
	for i := range m.lods {
		m.lods[i].valid = Region{}
	}
}

func (m *Mipmap[R]) ChannelCount() ChannelCount { return ChannelCount(m.lod0.st.ChannelCount()) }
func (m *Mipmap[R]) FrameCount() FrameCount     { return FrameCount(m.lod0.st.FrameCount()) }
func (m *Mipmap[R]) Resolution() Resolution     { return m.res }
func (m *Mipmap[R]) MaxSourceClip() MaxSourceClip {
	return m.clip
}

// Base returns the aggregation base, Resolution()+2.
func (m *Mipmap[R]) Base() uint64 { return m.base }

// LODCount returns the number of levels including level 0.
func (m *Mipmap[R]) LODCount() int { return len(m.lods) + 1 }

// MaxLOD returns the deepest level index.
func (m *Mipmap[R]) MaxLOD() LODIndex { return LODIndex(len(m.lods)) }

// BinSize returns how many level-0 frames one bin of lod summarizes.
func (m *Mipmap[R]) BinSize(lod LODIndex) uint64 {
	lod = m.clampLOD(lod)
	if lod == 0 {
		return 1
	}

	return m.lods[lod-1].binSize
}

// LODFrameCount returns the number of bins in lod.
func (m *Mipmap[R]) LODFrameCount(lod LODIndex) FrameCount {
	return m.levelFrames(m.clampLOD(lod))
}

// ValidRegion returns the region of lod, in its own coordinates, that holds
// current data.
func (m *Mipmap[R]) ValidRegion(lod LODIndex) Region {
	lod = m.clampLOD(lod)
	if lod == 0 {
		return m.lod0.valid
	}

	return m.lods[lod-1].valid
}

// Encode quantizes v using the mipmap's clip setting.
func (m *Mipmap[R]) Encode(v float32) R { return Encode[R](m.clip, v) }

// AsFloat decodes v using the mipmap's clip setting.
func (m *Mipmap[R]) AsFloat(v R) float32 { return AsFloat(v, m.clip) }

// BinSizeToLOD maps the number of level-0 frames one output element should
// cover (e.g. frames per pixel) to the matching fractional level.
func (m *Mipmap[R]) BinSizeToLOD(binSize float32) float32 {
	if binSize <= 1 {
		return 0
	}

	return float32(math.Log(float64(binSize)) / math.Log(float64(m.base)))
}

// Set writes one level-0 sample. The index must be in range.
func (m *Mipmap[R]) Set(ch ChannelIdx, fr FrameIdx, v float32) {
	m.lod0.st.Set(uint64(ch), uint64(fr), m.Encode(v))
}

func (m *Mipmap[R]) clampLOD(lod LODIndex) LODIndex {
	return min(lod, m.MaxLOD())
}

func (m *Mipmap[R]) checkChannel(ch ChannelIdx) {
	if n := m.ChannelCount(); ChannelCount(ch) >= n {
		panic(fmt.Sprintf("mipmap: channel %d out of range [0,%d)", ch, n))
	}
}
