// SPDX-License-Identifier: EPL-2.0

package capture

import "github.com/ik5/audmip/mipmap"

// RunUpdater regenerates m over every region received until regions is
// closed, calling onUpdate (if set) after each. It returns the union of
// the regions it processed.
//
// Regions must be disjoint from whatever is being written concurrently,
// which is what Writer guarantees. Reads of m belong in onUpdate. Level bins straddling the write head
// only fold frames already marked valid, and are completed by the update
// of the next region.
func RunUpdater[R mipmap.Rep](m *mipmap.Mipmap[R], regions <-chan mipmap.Region, onUpdate func(mipmap.Region)) mipmap.Region {
	var done mipmap.Region
	for region := range regions {
		if region.Empty() {
			continue
		}

		m.Update(region)
		done = done.Union(region)
		if onUpdate != nil {
			onUpdate(region)
		}
	}

	return done
}
