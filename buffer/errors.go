// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	// ErrTooManyChannels is returned by New and Resize above SaneChannelCount.
	ErrTooManyChannels = errors.New("channel count exceeds sane limit")

	// ErrTooManyFrames is returned by New and Resize above SaneFrameCount.
	ErrTooManyFrames = errors.New("frame count exceeds sane limit")
)
