// SPDX-License-Identifier: EPL-2.0

package mipmap

// Rep is the unsigned integer type samples are quantized to. uint8 is enough
// for drawing waveforms; wider types trade memory for precision.
type Rep interface {
	~uint8 | ~uint16 | ~uint32
}

// Resolution controls the aggregation base of the pyramid. Lower is better
// quality but uses more memory:
//
//	0: each level is 1/2 the size of the previous one
//	1: 1/3
//	2: 1/4, and so on.
type Resolution uint8

// Base returns the number of previous-level frames summarized by one bin.
func (r Resolution) Base() uint64 { return uint64(r) + 2 }

// MaxSourceClip is how far input samples may exceed the -1..1 range before
// they are clipped by the encoder. A source peaking at -1.543 needs 0.543.
// Writers that cannot know the peak ahead of time (e.g. a live input) can
// leave it at 0 and accept clipping.
type MaxSourceClip float32

func (c MaxSourceClip) limit() float64 { return 1 + float64(c) }

// ValueMax is the largest encoded value. The top of the native range is
// left unused.
func ValueMax[R Rep]() R { return ^R(0) - 1 }

// ValueMin is the smallest encoded value.
func ValueMin[R Rep]() R { return 0 }

// ValueSilent is the encoding of 0.0 and the value returned for frames that
// hold no valid data.
func ValueSilent[R Rep]() R { return ValueMax[R]() / 2 }

// MinMax is the aggregate stored in one bin. For level 0 both fields carry
// the same sample.
type MinMax[R Rep] struct {
	Min R
	Max R
}

// Silent returns the pair reported for invalid positions.
func Silent[R Rep]() MinMax[R] {
	return MinMax[R]{Min: ValueSilent[R](), Max: ValueSilent[R]()}
}

// Encode quantizes v, clamped to ±(1+clip), into R. NaN encodes as silence.
func Encode[R Rep](clip MaxSourceClip, v float32) R {
	if v != v {
		return ValueSilent[R]()
	}

	limit := clip.limit()
	f := min(max(float64(v), -limit), limit)
	f /= limit
	f++
	f *= float64(ValueSilent[R]())

	return R(f)
}

// AsFloat is the inverse of Encode.
func AsFloat[R Rep](v R, clip MaxSourceClip) float32 {
	f := float64(v)
	f /= float64(ValueSilent[R]())
	f--
	f *= clip.limit()

	return float32(f)
}

// Step returns the width of one quantization step in decoded units.
func Step[R Rep](clip MaxSourceClip) float32 {
	return float32(clip.limit() / float64(ValueSilent[R]()))
}
