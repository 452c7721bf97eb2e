// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// PCMScale returns the divisor that maps signed integer PCM of bitDepth
// bits onto [-1,1). Unknown depths are treated as 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1))
	default:
		return 32768
	}
}

// IntsToFloats converts integer PCM of bitDepth bits into dst and returns
// the number of samples converted.
func IntsToFloats(dst []float32, src []int, bitDepth int) int {
	scale := 1 / PCMScale(bitDepth)
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) * scale
	}

	return n
}

// Peak returns the largest absolute sample value in samples.
func Peak(samples []float32) float32 {
	var peak float64
	for _, v := range samples {
		peak = max(peak, math.Abs(float64(v)))
	}

	return float32(peak)
}
