// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"time"

	"github.com/pion/logging"

	"github.com/ik5/audmip/mipmap"
)

// Config describes a capture session. The mipmap is sized for Duration up
// front; input past that is discarded.
type Config struct {
	SampleRate int
	Channels   int
	Duration   time.Duration

	Resolution mipmap.Resolution
	Clip       mipmap.MaxSourceClip

	// QueueSize is the number of written regions that may wait for the
	// updater before the writer starts merging them.
	QueueSize int

	// OnUpdate, when set, is called from the updater goroutine after each
	// region has been regenerated. No update runs while it does, so it may
	// read the mipmap; it should return quickly. Other goroutines must not
	// read the mipmap before Recorder.Stop returns.
	OnUpdate func(mipmap.Region)

	Logger logging.LeveledLogger
}

// DefaultConfig captures ten seconds of 48 kHz mono.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		Channels:   1,
		Duration:   10 * time.Second,
		Resolution: 2,
		QueueSize:  64,
	}
}

// Frames is the mipmap length needed to hold Duration.
func (c Config) Frames() mipmap.FrameCount {
	return mipmap.FrameCount(c.Duration.Seconds() * float64(c.SampleRate))
}

func (c Config) validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.Channels <= 0:
		return fmt.Errorf("%w: %d channels", ErrInvalidConfig, c.Channels)
	case c.Duration <= 0:
		return fmt.Errorf("%w: duration %v", ErrInvalidConfig, c.Duration)
	case c.QueueSize <= 0:
		return fmt.Errorf("%w: queue size %d", ErrInvalidConfig, c.QueueSize)
	}

	return nil
}
