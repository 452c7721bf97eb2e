// SPDX-License-Identifier: EPL-2.0

package mipmap

import "fmt"

// Update regenerates every level over the level-0 region written since the
// last update and extends the valid regions to cover it. Each level only
// recomputes the bins whose inputs lie in the region, so the cost is
// proportional to the region size.
//
// region must be non-empty and end at or before FrameCount().
func (m *Mipmap[R]) Update(region Region) {
	if region.Empty() {
		panic(fmt.Sprintf("mipmap: update with empty region [%d,%d)", region.Beg, region.End))
	}
	if n := m.FrameCount(); FrameCount(region.End) > n {
		panic(fmt.Sprintf("mipmap: update region end %d beyond frame count %d", region.End, n))
	}

	m.lod0.valid = m.lod0.valid.Union(region)
	for i := range m.lods {
		l := &m.lods[i]
		region = region.scale(m.base, l.frameCount())
		m.generate(l, region)
	}
}

// UpdateAll is Update over every frame. It does nothing for an empty mipmap.
func (m *Mipmap[R]) UpdateAll() {
	if n := m.FrameCount(); n > 0 {
		m.Update(Region{End: FrameIdx(n)})
	}
}
