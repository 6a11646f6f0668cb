package effects

import (
	"image/color"

	"github.com/uzimpp/elemental-dungeon-sub000/config"
)

// Kind names the visual a renderer should draw for an Effect.
type Kind string

const (
	Explosion  Kind = "explosion"
	HealGlow   Kind = "heal"
	SlashArc   Kind = "slash"
	Line       Kind = "line"
	Afterimage Kind = "dash"
)

// Effect is a fire-and-forget request for a short-lived visual.
// Angles are radians; EndX/EndY are only used by Line.
type Effect struct {
	Kind       Kind
	X, Y       float64
	Color      color.RGBA
	Size       float64
	Duration   float64
	StartAngle float64
	SweepAngle float64
	EndX, EndY float64
}

// Sink receives effect requests and sound playback keys from the
// simulation. Nothing is returned to the caller.
type Sink interface {
	Emit(Effect)
	Play(config.SoundID)
}

// Queue buffers requests until the presentation layer drains them.
type Queue struct {
	Effects []Effect
	Sounds  []config.SoundID
}

func (q *Queue) Emit(e Effect) {
	q.Effects = append(q.Effects, e)
}

func (q *Queue) Play(id config.SoundID) {
	if id == config.SoundNone {
		return
	}
	q.Sounds = append(q.Sounds, id)
}

// Drain returns and clears the buffered effects and sounds.
func (q *Queue) Drain() ([]Effect, []config.SoundID) {
	fx, snd := q.Effects, q.Sounds
	q.Effects = nil
	q.Sounds = nil
	return fx, snd
}

// Count returns how many effects of kind are buffered.
func (q *Queue) Count(kind Kind) int {
	n := 0
	for _, e := range q.Effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Discard drops everything.
type Discard struct{}

func (Discard) Emit(Effect)         {}
func (Discard) Play(config.SoundID) {}
