// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into an audio.Source.
//
// Parsing is done by github.com/go-audio/aiff. AIFF is the big-endian
// counterpart of WAV; 8, 16, 24 and 32-bit integer PCM is supported with any
// channel count and sample rate. Other sample sizes return
// ErrUnsupportedBitDepth.
//
//	f, _ := os.Open("take.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not a FORM/AIFF stream
//	}
//	defer src.Close() // also closes f
//
// Like the WAV decoder, the returned source reports its frame count through
// audio.Sized.
package aiff
