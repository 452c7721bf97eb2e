// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrNotPCM is returned for float and compressed WAV encodings.
	ErrNotPCM = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedBitDepth is returned for sample sizes other than 8, 16,
	// 24 and 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrNoChannels indicates a header with a zero channel count.
	ErrNoChannels = errors.New("WAV header declares no channels")
)
