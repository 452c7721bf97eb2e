// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into an audio.Source.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, which already produces
// float samples in [-1,1], so reads are passed through without conversion.
// Any channel count and sample rate the stream declares is supported.
//
//	f, _ := os.Open("take.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
// Seekable inputs report their frame count through audio.Sized.
package vorbis
