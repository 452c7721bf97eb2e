// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid capture config")

	// ErrStopped is returned by a second call to Recorder.Stop.
	ErrStopped = errors.New("recorder already stopped")
)
