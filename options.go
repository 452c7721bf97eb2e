// SPDX-License-Identifier: EPL-2.0

package audmip

import (
	"github.com/pion/logging"

	"github.com/ik5/audmip/mipmap"
)

// Options controls how a source is turned into a mipmap.
type Options struct {
	// Resolution of the mipmap; each level aggregates Resolution+2 bins of
	// the one below.
	Resolution mipmap.Resolution
	// Clip is the headroom above full scale kept by the quantizer. Ignored
	// when AutoClip is set.
	Clip mipmap.MaxSourceClip
	// AutoClip derives Clip from the peak of the source so that no sample
	// saturates.
	AutoClip bool
	// Mono averages all source channels into one.
	Mono bool
	// ChunkFrames is the number of frames read from the source at a time.
	ChunkFrames int
	// Logger receives progress messages. A scoped default is used when nil.
	Logger logging.LeveledLogger
}

// DefaultOptions returns base-4 levels, no headroom and 4096-frame reads.
func DefaultOptions() Options {
	return Options{
		Resolution:  2,
		ChunkFrames: 4096,
	}
}

func (o Options) chunkFrames() int {
	if o.ChunkFrames <= 0 {
		return 4096
	}

	return o.ChunkFrames
}
