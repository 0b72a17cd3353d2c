package scenes

// TimedIntro reports done once Duration seconds of frame time have passed.
type TimedIntro struct {
	Duration float64
	elapsed  float64
}

func NewTimedIntro(duration float64) *TimedIntro {
	return &TimedIntro{Duration: duration}
}

func (i *TimedIntro) Update(dt float64) {
	i.elapsed += dt
}

func (i *TimedIntro) Done() bool {
	return i.elapsed >= i.Duration
}

// Progress is the intro completion in [0,1].
func (i *TimedIntro) Progress() float64 {
	if i.Duration <= 0 {
		return 1
	}
	return min(i.elapsed/i.Duration, 1)
}
