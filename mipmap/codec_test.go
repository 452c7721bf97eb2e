// SPDX-License-Identifier: EPL-2.0

package mipmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(254), ValueMax[uint8]())
	assert.Equal(t, uint8(127), ValueSilent[uint8]())
	assert.Equal(t, uint8(0), ValueMin[uint8]())

	assert.Equal(t, uint16(65534), ValueMax[uint16]())
	assert.Equal(t, uint16(32767), ValueSilent[uint16]())

	assert.Equal(t, uint32(math.MaxUint32-1), ValueMax[uint32]())
	assert.Equal(t, uint32(math.MaxUint32/2), ValueSilent[uint32]())
}

func TestEncode_Edges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		clip  MaxSourceClip
		value float32
		want  uint8
	}{
		{"zero is silent", 0, 0, 127},
		{"full scale positive", 0, 1, 254},
		{"full scale negative", 0, -1, 0},
		{"clipped positive", 0, 2, 254},
		{"clipped negative", 0, -3, 0},
		{"headroom positive", 1, 2, 254},
		{"headroom half", 1, 1, 190},
		{"nan", 0, float32(math.NaN()), 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Encode[uint8](tt.clip, tt.value))
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, clip := range []MaxSourceClip{0, 0.25, 0.5, 2} {
		limit := 1 + float32(clip)
		step8 := Step[uint8](clip)
		step16 := Step[uint16](clip)
		step32 := Step[uint32](clip)

		for i := 0; i <= 400; i++ {
			x := -limit + 2*limit*float32(i)/400

			assert.InDelta(t, x, AsFloat(Encode[uint8](clip, x), clip), float64(step8)+1e-6, "uint8 clip=%v x=%v", clip, x)
			assert.InDelta(t, x, AsFloat(Encode[uint16](clip, x), clip), float64(step16)+1e-6, "uint16 clip=%v x=%v", clip, x)
			assert.InDelta(t, x, AsFloat(Encode[uint32](clip, x), clip), float64(step32)+1e-6, "uint32 clip=%v x=%v", clip, x)
		}
	}
}

func TestEncode_NeverExceedsValueMax(t *testing.T) {
	t.Parallel()

	for _, v := range []float32{1, 1.0000001, 100, float32(math.Inf(1))} {
		assert.LessOrEqual(t, Encode[uint8](0, v), ValueMax[uint8]())
		assert.LessOrEqual(t, Encode[uint16](0, v), ValueMax[uint16]())
		assert.LessOrEqual(t, Encode[uint32](0, v), ValueMax[uint32]())
	}
	assert.Equal(t, uint8(0), Encode[uint8](0, float32(math.Inf(-1))))
}

func TestMipmap_ClipHeadroom(t *testing.T) {
	t.Parallel()

	roomy, err := New[uint8](1, 4, 0, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	roomy.Set(0, 0, 1.3)
	roomy.Update(Region{Beg: 0, End: 1})
	got := roomy.AsFloat(roomy.Read(0, 0, 0).Max)
	assert.InDelta(t, 1.3, got, float64(Step[uint8](0.5)))

	tight, err := New[uint8](1, 4, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tight.Set(0, 0, 1.3)
	tight.Update(Region{Beg: 0, End: 1})
	assert.InDelta(t, 1.0, tight.AsFloat(tight.Read(0, 0, 0).Max), 1e-6)
}
