// SPDX-License-Identifier: EPL-2.0

package audmip

import "errors"

var (
	// ErrMipmapFull is returned by Streamer when the source has more frames
	// than the mipmap holds.
	ErrMipmapFull = errors.New("mipmap is full")

	// ErrChannelMismatch is returned when a source and a mipmap disagree on
	// the channel count.
	ErrChannelMismatch = errors.New("source and mipmap channel counts differ")
)
