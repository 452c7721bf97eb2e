// SPDX-License-Identifier: EPL-2.0

// Package capture records from an input device into a mipmap and keeps
// its levels up to date while recording.
//
// Device access goes through github.com/gen2brain/malgo. The device
// callback only writes level-0 samples (Writer); each written region is
// handed over a buffered channel to one updater goroutine (RunUpdater)
// that regenerates the levels. The two never touch the same frames, so the
// mipmap needs no lock:
//
//	cfg := capture.DefaultConfig()
//	cfg.Duration = 5 * time.Second
//	cfg.OnUpdate = func(r mipmap.Region) { /* read r here, on the updater goroutine */ }
//
//	rec, err := capture.Start[uint8](cfg)
//	if err != nil {
//	    return err
//	}
//	<-rec.Full()
//	region, err := rec.Stop()
//
// Writer and RunUpdater have no device dependency and can drive a mipmap
// from any real-time producer.
package capture
