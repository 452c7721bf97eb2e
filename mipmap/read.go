// SPDX-License-Identifier: EPL-2.0

package mipmap

import (
	"fmt"
	"math"
)

// Read returns the pair stored at lod without interpolation. fr is
// LOD-local: for a 100-frame mipmap with resolution 0 it ranges over 0-99
// for level 0, 0-49 for level 1, 0-24 for level 2 and so on.
//
// A level past the deepest one reads the deepest one. A frame past the end
// of the level reads the last frame, which is then checked against the
// valid region. Positions without valid data read as Silent.
func (m *Mipmap[R]) Read(lod LODIndex, ch ChannelIdx, fr FrameIdx) MinMax[R] {
	m.checkChannel(ch)

	return m.readExact(m.clampLOD(lod), ch, fr)
}

// ReadFrame interpolates between two frames of the same level. frame is a
// level-0 position; it is scaled by the level's bin size.
func (m *Mipmap[R]) ReadFrame(lod LODIndex, ch ChannelIdx, frame float32) MinMax[R] {
	m.checkChannel(ch)

	return m.readFrame(m.clampLOD(lod), ch, frame)
}

// ReadLOD interpolates between two levels at the same LOD-local frame.
func (m *Mipmap[R]) ReadLOD(lod float32, ch ChannelIdx, fr FrameIdx) MinMax[R] {
	m.checkChannel(ch)

	lh := makeLerpHelper("lod", lod)
	a := m.readExact(m.clampLOD(LODIndex(lh.a)), ch, fr)
	b := m.readExact(m.clampLOD(LODIndex(lh.b)), ch, fr)

	return Lerp(a, b, lh.t)
}

// ReadLerp interpolates between two levels and, within each of them,
// between two frames. frame is a level-0 position.
func (m *Mipmap[R]) ReadLerp(lod float32, ch ChannelIdx, frame float32) MinMax[R] {
	m.checkChannel(ch)

	lh := makeLerpHelper("lod", lod)
	a := m.readFrame(m.clampLOD(LODIndex(lh.a)), ch, frame)
	b := m.readFrame(m.clampLOD(LODIndex(lh.b)), ch, frame)

	return Lerp(a, b, lh.t)
}

// ReadFloat is ReadLerp decoded to floats.
func (m *Mipmap[R]) ReadFloat(lod float32, ch ChannelIdx, frame float32) (lo, hi float32) {
	mm := m.ReadLerp(lod, ch, frame)

	return m.AsFloat(mm.Min), m.AsFloat(mm.Max)
}

func (m *Mipmap[R]) readExact(lod LODIndex, ch ChannelIdx, fr FrameIdx) MinMax[R] {
	if lod == 0 {
		v := m.lod0.read(ch, fr)
		return MinMax[R]{Min: v, Max: v}
	}

	return m.lods[lod-1].read(ch, fr)
}

func (m *Mipmap[R]) readFrame(lod LODIndex, ch ChannelIdx, frame float32) MinMax[R] {
	if lod == 0 {
		lh := makeLerpHelper("frame", frame)
		a := m.lod0.read(ch, FrameIdx(lh.a))
		b := m.lod0.read(ch, FrameIdx(lh.b))
		v := lerp(a, b, lh.t)
		return MinMax[R]{Min: v, Max: v}
	}

	l := &m.lods[lod-1]
	lh := makeLerpHelper("frame", frame/float32(l.binSize))

	return Lerp(l.read(ch, FrameIdx(lh.a)), l.read(ch, FrameIdx(lh.b)), lh.t)
}

// Lerp interpolates min and max independently: a + t*(b-a).
func Lerp[R Rep](a, b MinMax[R], t float32) MinMax[R] {
	return MinMax[R]{
		Min: lerp(a.Min, b.Min, t),
		Max: lerp(a.Max, b.Max, t),
	}
}

func lerp[R Rep](a, b R, t float32) R {
	af, bf := float64(a), float64(b)

	return R(float64(t)*(bf-af) + af)
}

type lerpHelper struct {
	a, b uint64
	t    float32
}

// maxLerpPosition bounds fractional positions, +Inf included. Anything this
// far out is past every level and frame and reads as the clamped end.
const maxLerpPosition = 1 << 53

func makeLerpHelper(what string, x float32) lerpHelper {
	if !(x >= 0) {
		panic(fmt.Sprintf("mipmap: negative or NaN %s position %v", what, x))
	}

	fl := math.Floor(min(float64(x), maxLerpPosition))
	if fl == maxLerpPosition {
		return lerpHelper{a: maxLerpPosition, b: maxLerpPosition}
	}

	return lerpHelper{
		a: uint64(fl),
		b: uint64(math.Ceil(float64(x))),
		t: float32(float64(x) - fl),
	}
}
