package effects

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// minDuration keeps zero-length effects visible for at least one frame.
const minDuration = 1.0 / 60

// Active is an effect being played back.
type Active struct {
	Effect
	// Progress runs from 0 to 1 over the effect's duration.
	Progress float64
	tween    *gween.Tween
}

// Tracker plays effects over time for the renderer.
type Tracker struct {
	active []*Active
}

func (t *Tracker) Add(effects ...Effect) {
	for _, e := range effects {
		d := e.Duration
		if d < minDuration {
			d = minDuration
		}
		t.active = append(t.active, &Active{
			Effect: e,
			tween:  gween.New(0, 1, float32(d), ease.Linear),
		})
	}
}

// Update advances every effect by dt seconds and drops finished ones.
func (t *Tracker) Update(dt float64) {
	kept := t.active[:0]
	for _, a := range t.active {
		v, done := a.tween.Update(float32(dt))
		a.Progress = float64(v)
		if !done {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(t.active); i++ {
		t.active[i] = nil
	}
	t.active = kept
}

func (t *Tracker) Active() []*Active {
	return t.active
}

func (t *Tracker) Len() int { return len(t.active) }
