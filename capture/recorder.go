// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/pion/logging"

	internallog "github.com/ik5/audmip/internal/logging"
	"github.com/ik5/audmip/mipmap"
)

// Recorder captures from the default input device into a mipmap. The
// device callback writes samples; a separate goroutine updates the levels.
type Recorder[R mipmap.Rep] struct {
	m      *mipmap.Mipmap[R]
	w      *Writer[R]
	ctx    *malgo.AllocatedContext
	device *malgo.Device
	log    logging.LeveledLogger

	updated chan mipmap.Region
	stopMtx sync.Mutex
	stopped bool
}

// Start allocates a mipmap for cfg, opens the default capture device and
// starts recording.
func Start[R mipmap.Rep](cfg Config) (*Recorder[R], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = internallog.NewLogger("capture")
	}

	m, err := mipmap.New[R](mipmap.ChannelCount(cfg.Channels), cfg.Frames(), cfg.Resolution, cfg.Clip)
	if err != nil {
		return nil, fmt.Errorf("allocating capture mipmap: %w", err)
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		log.Debugf("%v", message)
	})
	if err != nil {
		return nil, fmt.Errorf("initializing audio context: %w", err)
	}

	r := &Recorder[R]{
		m:       m,
		w:       NewWriter(m, cfg.QueueSize),
		ctx:     ctx,
		log:     log,
		updated: make(chan mipmap.Region, 1),
	}

	config := malgo.DefaultDeviceConfig(malgo.Capture)
	config.PerformanceProfile = malgo.LowLatency
	config.Capture.Format = malgo.FormatF32
	config.Capture.Channels = uint32(cfg.Channels)
	config.SampleRate = uint32(cfg.SampleRate)

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			r.w.WriteBytes(input)
		},
	}

	r.device, err = malgo.InitDevice(ctx.Context, config, callbacks)
	if err != nil {
		r.freeContext()
		return nil, fmt.Errorf("opening capture device: %w", err)
	}

	go func() {
		done := RunUpdater(m, r.w.Regions(), cfg.OnUpdate)
		r.updated <- done
	}()

	if err := r.device.Start(); err != nil {
		r.device.Uninit()
		r.w.Close()
		<-r.updated
		r.freeContext()
		return nil, fmt.Errorf("starting capture device: %w", err)
	}

	log.Infof("capturing %d ch at %d Hz for up to %v", cfg.Channels, cfg.SampleRate, cfg.Duration)

	return r, nil
}

// Mipmap returns the mipmap being filled. While recording it may only be
// read from Config.OnUpdate; any goroutine may read it once Stop returns.
func (r *Recorder[R]) Mipmap() *mipmap.Mipmap[R] { return r.m }

// Full is closed once the configured duration has been captured.
func (r *Recorder[R]) Full() <-chan struct{} { return r.w.Full() }

// Stop halts the device, waits for the pending updates and releases the
// device. It returns the region captured, valid at every level.
func (r *Recorder[R]) Stop() (mipmap.Region, error) {
	r.stopMtx.Lock()
	defer r.stopMtx.Unlock()

	if r.stopped {
		return mipmap.Region{}, ErrStopped
	}
	r.stopped = true

	var stopErr error
	if err := r.device.Stop(); err != nil {
		stopErr = fmt.Errorf("stopping capture device: %w", err)
	}
	r.device.Uninit()

	// The callback can no longer run, so the writer may be closed here.
	r.w.Close()
	done := <-r.updated
	r.freeContext()

	if n := r.w.Overrun(); n > 0 {
		r.log.Warnf("discarded %d frames past the end of the mipmap", n)
	}
	r.log.Infof("captured %d frames", done.Len())

	return done, stopErr
}

func (r *Recorder[R]) freeContext() {
	if err := r.ctx.Uninit(); err != nil {
		r.log.Warnf("releasing audio context: %v", err)
	}
	r.ctx.Free()
}
