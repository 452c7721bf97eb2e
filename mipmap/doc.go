// SPDX-License-Identifier: EPL-2.0

// Package mipmap provides a multi-resolution min/max index over audio
// samples, intended for waveform rendering but also useful for analysis.
//
// # Levels
//
// Level 0 holds the written samples, quantized to an unsigned integer type
// (see Rep). Every further level N stores, per channel, one (min, max) pair
// per bin, where a bin covers Base()^N level-0 frames. Base is
// Resolution+2, so resolution 0 gives the classic halving pyramid. Levels
// are added until one bin covers the whole mipmap.
//
// # Writing and updating
//
// Writes only touch level 0:
//
//	m, _ := mipmap.New[uint8](2, 48000, 0, 0)
//	m.WriteFunc(0, 4800, func(ch mipmap.ChannelIdx, i mipmap.FrameIdx) float32 {
//	    return samples[ch][i]
//	})
//	m.Update(mipmap.Region{Beg: 0, End: 4800})
//
// Update regenerates only the bins of each level that the region reaches,
// so a streaming writer can append small blocks and update them one by one
// at a cost proportional to the block size.
//
// # Reading
//
// Four read shapes cover every zoom situation:
//
//	Read      exact level, exact LOD-local frame
//	ReadFrame exact level, fractional level-0 frame
//	ReadLOD   fractional level, exact LOD-local frame
//	ReadLerp  fractional level, fractional level-0 frame
//
// BinSizeToLOD turns "frames per pixel" into the fractional level to read.
// Reads never fail: levels past the deepest one clamp to it, frames past the
// end clamp to the last frame, and frames outside the valid region read as
// Silent. Clear drops all validity without freeing memory.
//
// # Quantization
//
// Samples in -(1+clip)..(1+clip) map linearly onto ValueMin..2*ValueSilent.
// ValueMax leaves the top value of the native range unused. Choose
// MaxSourceClip so that hot sources are not clipped.
//
// # Concurrency
//
// A Mipmap does no locking. It is the caller's job not to run two mutations
// at once, and to order every read after the last Update, Clear or Resize
// and before the next one. Writes of level-0 frames outside the valid region
// may overlap an Update; that is how package capture records and updates on
// separate goroutines.
package mipmap
