package picking

import (
	"github.com/SythFlux/Donny-Portfolio/tags"
	"github.com/solarlune/resolv"
)

const cellSize = 32

// Target is an orb's projected disc on screen.
type Target struct {
	Index int
	X, Y  float64
	R     float64
	Depth float64
}

// Picker keeps one broad-phase object per orb in a resolv space and narrows
// the candidates under the pointer down to the closest disc.
type Picker struct {
	space   *resolv.Space
	cursor  *resolv.Object
	objects map[int]*resolv.Object
	targets map[int]Target
}

func NewPicker(w, h int) *Picker {
	space := resolv.NewSpace(w, h, cellSize, cellSize)
	cursor := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	space.Add(cursor)
	return &Picker{
		space:   space,
		cursor:  cursor,
		objects: map[int]*resolv.Object{},
		targets: map[int]Target{},
	}
}

// Sync replaces the targets with this frame's projected orbs.
func (p *Picker) Sync(targets []Target) {
	seen := make(map[int]bool, len(targets))
	for _, t := range targets {
		seen[t.Index] = true
		obj, ok := p.objects[t.Index]
		if !ok {
			obj = resolv.NewObject(0, 0, 1, 1, tags.ResolvOrb)
			obj.Data = t.Index
			p.space.Add(obj)
			p.objects[t.Index] = obj
		}
		obj.X = t.X - t.R
		obj.Y = t.Y - t.R
		obj.W = 2 * t.R
		obj.H = 2 * t.R
		obj.Update()
		p.targets[t.Index] = t
	}
	for idx, obj := range p.objects {
		if !seen[idx] {
			p.space.Remove(obj)
			delete(p.objects, idx)
			delete(p.targets, idx)
		}
	}
}

// Pick returns the index of the nearest orb whose disc contains (x, y).
func (p *Picker) Pick(x, y float64) (int, bool) {
	p.cursor.X = x
	p.cursor.Y = y
	p.cursor.Update()

	check := p.cursor.Check(0, 0, tags.ResolvOrb)
	if check == nil {
		return -1, false
	}

	best := -1
	bestDepth := 0.0
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok {
			continue
		}
		t := p.targets[idx]
		dx, dy := x-t.X, y-t.Y
		if dx*dx+dy*dy > t.R*t.R {
			continue
		}
		if best < 0 || t.Depth < bestDepth || (t.Depth == bestDepth && idx < best) {
			best = idx
			bestDepth = t.Depth
		}
	}
	return best, best >= 0
}

// Objects returns every object in the picking space, cursor included.
func (p *Picker) Objects() []*resolv.Object {
	return p.space.Objects()
}
