// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDstSize is returned when a destination buffer does not hold
	// a whole number of frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is matched by UnknownFormatError.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrNoChannels is returned for a source with zero channels.
	ErrNoChannels = errors.New("source reports no channels")
)

// UnknownFormatError is returned by Registry.ForPath. It matches
// ErrUnknownFormat with errors.Is.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%s: missing file extension", ErrUnknownFormat)
	}

	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Format)
}

func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}
