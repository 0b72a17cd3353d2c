// Package harmonics generates the shape coefficients an orb morphs between.
package harmonics

import (
	"math"
	"math/rand/v2"
)

// N is the number of shape coefficients per orb.
const N = 12

// Coeffs is one shape: coefficient 0 scales the base radius, the rest are
// signed harmonic amplitudes.
type Coeffs [N]float64

// Random draws a new target shape. The radial term stays near baseR while
// higher harmonics get progressively smaller amplitudes up to ampHi.
func Random(rng *rand.Rand, baseR, ampHi float64) Coeffs {
	var c Coeffs
	c[0] = baseR * (0.9 + rng.Float64()*0.2)
	for i := 1; i < N; i++ {
		falloff := 1 / (1 + float64(i-1)*0.25)
		c[i] = (rng.Float64()*2 - 1) * ampHi * falloff
	}
	return c
}

// Blend mixes a toward b by s component-wise.
func Blend(a, b Coeffs, s float64) Coeffs {
	var out Coeffs
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*s
	}
	return out
}

// Radius evaluates the shape's silhouette at angle theta. spin rotates the
// higher harmonics against each other so the outline churns as the orb turns.
func (c Coeffs) Radius(theta, spin float64) float64 {
	r := c[0]
	for k := 1; k < N; k++ {
		r += c[k] * math.Sin(float64(k+1)*theta+float64(k)*spin)
	}
	return r
}
