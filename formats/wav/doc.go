// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files into an audio.Source.
//
// Parsing is done by github.com/go-audio/wav. Integer PCM of 8, 16, 24 and
// 32 bits is supported, with any channel count and sample rate. Samples are
// scaled into [-1,1) by the bit depth, and 8-bit data, which WAV stores
// unsigned, is recentered first.
//
//	f, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a RIFF/WAVE stream
//	}
//	defer src.Close() // also closes f
//
// The returned source implements audio.Sized, so callers can size a mipmap
// before reading. The decoder needs to seek; readers that cannot are
// buffered in memory.
//
// Floating point (format tag 3) and compressed WAV files are rejected with
// ErrNotPCM.
package wav
