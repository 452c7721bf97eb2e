// SPDX-License-Identifier: EPL-2.0

// Package buffer provides a generic multi-channel, multi-frame sample store.
//
// Data keeps one contiguous slice per channel (non-interleaved). Every
// channel always has the same frame count. Element access is bounds checked
// and bulk access is done through scan callbacks which receive a slice that
// aliases the channel storage:
//
//	d, _ := buffer.New[float32](2, 1024, 0)
//	d.Write(0, 0, 256, func(buf []float32, start uint64) uint64 {
//	    for i := range buf {
//	        buf[i] = 0.5
//	    }
//	    return uint64(len(buf))
//	})
//
// Data performs no locking. Callers must not mutate a region while another
// goroutine reads it.
package buffer
