// SPDX-License-Identifier: EPL-2.0

package mipmap

// ChannelIdx addresses one channel.
type ChannelIdx uint64

// ChannelCount is a number of channels.
type ChannelCount uint64

// FrameIdx addresses one frame. Unless stated otherwise a FrameIdx is in the
// coordinate space of the level it is used with.
type FrameIdx uint64

// FrameCount is a number of frames.
type FrameCount uint64

// LODIndex selects a level of detail. Level 0 holds the written samples.
type LODIndex uint64

// Region is the half-open frame interval [Beg, End).
type Region struct {
	Beg FrameIdx
	End FrameIdx
}

// Empty reports whether r contains no frames.
func (r Region) Empty() bool { return r.Beg >= r.End }

// Len returns the number of frames in r.
func (r Region) Len() FrameCount {
	if r.Empty() {
		return 0
	}

	return FrameCount(r.End - r.Beg)
}

// Contains reports whether fr lies inside r.
func (r Region) Contains(fr FrameIdx) bool { return fr >= r.Beg && fr < r.End }

// Union returns the smallest region covering both r and o. An empty operand
// does not contribute.
func (r Region) Union(o Region) Region {
	switch {
	case o.Empty():
		return r
	case r.Empty():
		return o
	}

	return Region{Beg: min(r.Beg, o.Beg), End: max(r.End, o.End)}
}

// scale maps a region of one level into the next one. The start rounds down
// and the end rounds up so every bin touching r is included, then the end is
// clamped to the length of the next level.
func (r Region) scale(base uint64, length FrameCount) Region {
	beg := uint64(r.Beg) / base
	end := min(ceilDiv(uint64(r.End), base), uint64(length))

	return Region{Beg: FrameIdx(beg), End: FrameIdx(end)}
}

func ceilDiv(n, d uint64) uint64 {
	return (n + d - 1) / d
}
