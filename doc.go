// SPDX-License-Identifier: EPL-2.0

// Package audmip indexes audio for waveform display.
//
// The index itself lives in package mipmap: a stack of min/max summaries
// where each level aggregates Resolution+2 bins of the level below, so that
// any zoom can be drawn by reading one bin per pixel column. This package
// connects it to the decoders under formats and to audio.Source streams.
//
// # Whole files
//
// Build drains a source and returns a mipmap with every level generated:
//
//	f, _ := os.Open("take.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//	defer src.Close()
//
//	opts := audmip.DefaultOptions()
//	opts.AutoClip = true // keep peaks above full scale distinguishable
//	m, err := audmip.Build[uint8](src, opts)
//
// # Progressive loading
//
// Streamer writes a source into a preallocated mipmap chunk by chunk and
// regenerates the levels over every chunk. Each region returned by Pump is
// immediately readable, which lets a renderer draw a file while it loads:
//
//	m, _ := mipmap.New[uint8](2, frames, 2, 0)
//	s, _ := audmip.NewStreamer(m, src, audmip.DefaultOptions())
//	for {
//	    region, err := s.Pump()
//	    redraw(region)
//	    if err != nil {
//	        break
//	    }
//	}
//
// # Formats
//
//   - WAV (8/16/24/32-bit PCM) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Live input is handled by package capture, and package waveform turns a
// mipmap into text or PNG renderings.
package audmip
