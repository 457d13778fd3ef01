//go:build amd64 && goexperiment.simd

package ftrl

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/evilmucedin/SIMDNumber/hwy"
	"github.com/stretchr/testify/assert"
)

func TestUpdateVectorAVX2MatchesBase(t *testing.T) {
	if !hwy.CPUHasAVX2() {
		t.Skip("CPU does not support AVX2")
	}

	vc := NewVectorConfig(DefaultConfig())
	rng := rand.New(rand.NewPCG(5, 6))
	var lanes [4][hwy.NumLanes]float32

	for iter := range 500 {
		for i := range hwy.NumLanes {
			lanes[0][i] = rng.Float32()*2 - 1
			lanes[1][i] = rng.Float32()*2 - 1
			lanes[2][i] = rng.Float32()
			lanes[3][i] = rng.Float32()*2 - 1
		}
		g := hwy.FromLanes(lanes[0])
		bz, bn, bw := hwy.FromLanes(lanes[1]), hwy.FromLanes(lanes[2]), hwy.FromLanes(lanes[3])
		az, an, aw := bz, bn, bw

		baseFailed := BaseUpdateVector(g, &bz, &bn, &bw, vc)
		avxFailed := UpdateVector_AVX2(g, &az, &an, &aw, vc)

		assert.Equal(t, baseFailed, avxFailed, "iter %d", iter)
		for i := range hwy.NumLanes {
			assert.InDelta(t, bz.Lane(i), az.Lane(i), tolerance, "iter %d lane %d z", iter, i)
			assert.InDelta(t, bn.Lane(i), an.Lane(i), tolerance, "iter %d lane %d n", iter, i)
			assert.InDelta(t, bw.Lane(i), aw.Lane(i), tolerance, "iter %d lane %d weight", iter, i)
		}
	}
}

func TestUpdateVectorAVX2Validation(t *testing.T) {
	if !hwy.CPUHasAVX2() {
		t.Skip("CPU does not support AVX2")
	}

	vc := NewVectorConfig(DefaultConfig())
	g := hwy.New8(0.1, 0.2, float32(math.NaN()), 0.4, 0.5, float32(math.Inf(-1)), 0.7, 0.8)
	z, n, w := hwy.Set(0.3), hwy.Set(0.6), hwy.Set(0.25)

	failed := UpdateVector_AVX2(g, &z, &n, &w, vc)
	assert.Equal(t, []int{2, 5}, failed.Indices())
	assert.Equal(t, float32(0.25), w.Lane(2))
	assert.Equal(t, float32(0.25), w.Lane(5))
}
