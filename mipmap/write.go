// SPDX-License-Identifier: EPL-2.0

package mipmap

// WriterFunc fills buf, which aliases level-0 storage of channel ch starting
// at frame start, with encoded samples and returns how many frames it wrote.
// Values must lie in ValueMin..ValueMax.
type WriterFunc[R Rep] func(buf []R, ch ChannelIdx, start FrameIdx) FrameCount

// ChannelWriterFunc is WriterFunc for a single, known channel.
type ChannelWriterFunc[R Rep] func(buf []R, start FrameIdx) FrameCount

// Write runs w once per channel over level-0 frames [start, start+count),
// clamped to the frame count. It returns the number of frames written.
// The other levels are not regenerated until Update is called.
func (m *Mipmap[R]) Write(start FrameIdx, count FrameCount, w WriterFunc[R]) FrameCount {
	n := m.lod0.st.WriteAll(uint64(start), uint64(count), func(buf []R, ch, s uint64) uint64 {
		return uint64(w(buf, ChannelIdx(ch), FrameIdx(s)))
	})

	return FrameCount(n)
}

// WriteChannel is Write for one channel.
func (m *Mipmap[R]) WriteChannel(ch ChannelIdx, start FrameIdx, count FrameCount, w ChannelWriterFunc[R]) FrameCount {
	m.checkChannel(ch)
	n := m.lod0.st.Write(uint64(ch), uint64(start), uint64(count), func(buf []R, s uint64) uint64 {
		return uint64(w(buf, FrameIdx(s)))
	})

	return FrameCount(n)
}

// WriteFunc writes float samples supplied by provider, which receives the
// channel and the offset from start.
func (m *Mipmap[R]) WriteFunc(start FrameIdx, count FrameCount, provider func(ch ChannelIdx, offset FrameIdx) float32) FrameCount {
	return m.WriteEncodedFunc(start, count, func(ch ChannelIdx, offset FrameIdx) R {
		return m.Encode(provider(ch, offset))
	})
}

// WriteChannelFunc is WriteFunc for one channel.
func (m *Mipmap[R]) WriteChannelFunc(ch ChannelIdx, start FrameIdx, count FrameCount, provider func(offset FrameIdx) float32) FrameCount {
	return m.WriteChannelEncodedFunc(ch, start, count, func(offset FrameIdx) R {
		return m.Encode(provider(offset))
	})
}

// WriteEncodedFunc writes already encoded samples supplied by provider.
func (m *Mipmap[R]) WriteEncodedFunc(start FrameIdx, count FrameCount, provider func(ch ChannelIdx, offset FrameIdx) R) FrameCount {
	return m.Write(start, count, func(buf []R, ch ChannelIdx, _ FrameIdx) FrameCount {
		for i := range buf {
			buf[i] = provider(ch, FrameIdx(i))
		}
		return FrameCount(len(buf))
	})
}

// WriteChannelEncodedFunc is WriteEncodedFunc for one channel.
func (m *Mipmap[R]) WriteChannelEncodedFunc(ch ChannelIdx, start FrameIdx, count FrameCount, provider func(offset FrameIdx) R) FrameCount {
	return m.WriteChannel(ch, start, count, func(buf []R, _ FrameIdx) FrameCount {
		for i := range buf {
			buf[i] = provider(FrameIdx(i))
		}
		return FrameCount(len(buf))
	})
}

// WriteInterleaved writes channel-interleaved float samples, as produced by
// audio sources, starting at frame start. Trailing samples that do not form
// a whole frame are ignored.
func (m *Mipmap[R]) WriteInterleaved(start FrameIdx, samples []float32) FrameCount {
	channels := uint64(m.ChannelCount())
	if channels == 0 {
		return 0
	}
	frames := FrameCount(uint64(len(samples)) / channels)

	return m.WriteFunc(start, frames, func(ch ChannelIdx, offset FrameIdx) float32 {
		return samples[uint64(offset)*channels+uint64(ch)]
	})
}
