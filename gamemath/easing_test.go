package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSmoothstepEndpointsAndMonotonic(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0))
	assert.Equal(t, 1.0, Smoothstep(1))
	assert.InDelta(t, 0.5, Smoothstep(0.5), 1e-12)

	prev := Smoothstep(0)
	for i := 1; i <= 1000; i++ {
		v := Smoothstep(float64(i) / 1000)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestEaseInOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.Equal(t, 1.0, EaseInOutCubic(1.7))
	assert.InDelta(t, 4*0.25*0.25*0.25, EaseInOutCubic(0.25), 1e-6)
	assert.InDelta(t, 1-math.Pow(-2*0.75+2, 3)/2, EaseInOutCubic(0.75), 1e-6)
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-6)
}

func TestApproachNeverOvershoots(t *testing.T) {
	x := 0.0
	for i := 0; i < 500; i++ {
		x = Approach(x, 1, 0.12)
		assert.LessOrEqual(t, x, 1.0)
	}
	assert.InDelta(t, 1.0, x, 1e-6)

	assert.Equal(t, 0.5, ApproachRate(0, 1, 0.5, 0.1))
	assert.Equal(t, 0.9, ApproachRate(1, 0, 0.5, 0.1))
}

func TestLerpHitsEndpointsExactly(t *testing.T) {
	a := mgl64.Vec3{0.1, -3.3, 7.77}
	b := mgl64.Vec3{0.7, 2.2, -1.01}
	assert.Equal(t, a, LerpVec3(a, b, 0))
	assert.Equal(t, b, LerpVec3(a, b, 1))
}
