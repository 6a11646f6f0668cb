package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAnimation = errors.New("missing animation entry")
	ErrUnknownState     = errors.New("unknown animation state")
)

// DefaultLockDuration is used when a state has no usable animation entry.
const DefaultLockDuration = 0.5

// AnimationDef describes one row of the animation table. Frames are sprite
// sheet columns, Duration is seconds per frame.
type AnimationDef struct {
	Frames      []int   `yaml:"frames"`
	Duration    float64 `yaml:"duration"`
	Loop        bool    `yaml:"loop"`
	Directional bool    `yaml:"directional"`
}

// Total is the time needed to play every frame once.
func (d AnimationDef) Total() float64 {
	return float64(len(d.Frames)) * d.Duration
}

// AnimationTable maps each state to its animation definition.
type AnimationTable map[StateID]AnimationDef

// DefaultAnimations returns the character animation table. Every character
// sheet (player, enemies and summons) shares this layout.
func DefaultAnimations() AnimationTable {
	return AnimationTable{
		Idle:   {Frames: []int{0, 1}, Duration: 0.2, Loop: true, Directional: true},
		Walk:   {Frames: []int{2, 1, 3}, Duration: 0.15, Loop: true, Directional: true},
		Sprint: {Frames: []int{2, 1, 3}, Duration: 0.1, Loop: true, Directional: true},
		Sweep:  {Frames: []int{4, 5, 6, 7}, Duration: 0.1, Directional: true},
		Shoot:  {Frames: []int{8, 9, 10, 11}, Duration: 0.1, Directional: true},
		Cast:   {Frames: []int{12, 13, 14}, Duration: 0.1, Directional: true},
		Throw:  {Frames: []int{15, 16, 17}, Duration: 0.1, Directional: true},
		Hurt:   {Frames: []int{18, 19, 20}, Duration: 0.1, Directional: true},
		Dying:  {Frames: []int{21, 22, 23}, Duration: 0.3, Directional: true},
	}
}

// Validate checks that every state has a playable entry.
func (t AnimationTable) Validate() error {
	for _, s := range AllStates {
		def, ok := t[s]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingAnimation, s)
		}
		if len(def.Frames) == 0 {
			return fmt.Errorf("animation %s: no frames", s)
		}
		if def.Duration <= 0 {
			return fmt.Errorf("animation %s: duration must be positive, got %v", s, def.Duration)
		}
	}
	for s := range t {
		if _, ok := stateNames[s]; !ok || s == StateNone {
			return fmt.Errorf("%w: %d", ErrUnknownState, int(s))
		}
	}
	return nil
}

// Clone returns a deep copy so callers can tweak entries without touching
// the source table.
func (t AnimationTable) Clone() AnimationTable {
	out := make(AnimationTable, len(t))
	for s, def := range t {
		frames := make([]int, len(def.Frames))
		copy(frames, def.Frames)
		def.Frames = frames
		out[s] = def
	}
	return out
}
