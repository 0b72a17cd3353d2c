package render

import (
	"math"
	"math/rand/v2"

	"github.com/SythFlux/Donny-Portfolio/picking"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const starRadius = 70.0

type star struct {
	pos     mgl64.Vec3
	phase   float64
	twinkle float64
}

// Stars is the background particle field. It implements systems.Effects.
type Stars struct {
	stars []star
	t     float64
}

func NewStars(rng *rand.Rand, n int) *Stars {
	s := &Stars{stars: make([]star, n)}
	for i := range s.stars {
		z := rng.Float64()*2 - 1
		a := rng.Float64() * 2 * math.Pi
		ring := math.Sqrt(1 - z*z)
		s.stars[i] = star{
			pos:     mgl64.Vec3{ring * math.Cos(a), z, ring * math.Sin(a)}.Mul(starRadius),
			phase:   rng.Float64() * 2 * math.Pi,
			twinkle: 0.5 + rng.Float64()*1.5,
		}
	}
	return s
}

func (s *Stars) Update(t, dt float64) {
	s.t = t
}

func (s *Stars) Draw(screen *ebiten.Image, pv picking.View, th theme.Theme) {
	for _, st := range s.stars {
		x, y, _, ok := pv.Project(st.pos)
		if !ok {
			continue
		}
		alpha := 0.25 + 0.2*math.Sin(s.t*st.twinkle+st.phase)
		vector.FillRect(screen, float32(x), float32(y), 1, 1, rgba(th.Wire, alpha), false)
	}
}
