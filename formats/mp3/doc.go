// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio into an audio.Source.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit stereo at the stream's sample rate; mono files are duplicated onto
// both channels. Wrap the source in audio.MonoMixer to index a single
// channel.
//
//	f, _ := os.Open("song.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewMonoMixer(src)
//
// When the input can seek, the source implements audio.Sized with the
// decoded frame count.
package mp3
