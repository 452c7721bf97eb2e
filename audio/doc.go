// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the format decoders and
// the mipmap ingestion code share.
//
//   - Source, a stream of interleaved float32 samples
//   - Decoder and Registry, for picking a decoder by file extension
//   - MonoMixer and Downmix, for folding channels together
//   - PCMSource, an adapter over the go-audio integer PCM decoders
//   - PCMScale, IntsToFloats and Peak sample helpers
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns a count of values, not frames, and io.EOF once the
// stream is done. A read may return data together with io.EOF:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Registry
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("take1.WAV")
//
// Lookups are case-insensitive and ignore a leading dot. ForPath fails with
// an error matching ErrUnknownFormat.
//
// # Sample Format
//
// Samples are float32 nominally in [-1.0, 1.0]. Decoded lossy formats can
// overshoot slightly; Peak reports by how much, which is what the mipmap's
// MaxSourceClip wants to know.
package audio
