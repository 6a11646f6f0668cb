package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uzimpp/elemental-dungeon-sub000/config"
)

func testTable() config.AnimationTable {
	return config.AnimationTable{
		config.Idle:  {Frames: []int{0, 1}, Duration: 0.25, Loop: true, Directional: true},
		config.Walk:  {Frames: []int{2, 1, 3}, Duration: 0.25, Loop: true, Directional: true},
		config.Dying: {Frames: []int{21, 22, 23}, Duration: 0.25},
	}
}

func TestNearestDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   int
	}{
		{"right", 1, 0, 0},
		{"down", 0, 1, 90},
		{"left", -1, 0, 180},
		{"up", 0, -1, 270},
		{"down right", 1, 1, 45},
		{"up left", -1, -1, 225},
		{"almost right", 10, -1, 0},
		{"between up and up-right", 1, -2, 315},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearestDirection(tt.dx, tt.dy))
		})
	}
}

func TestAngleDiffWraps(t *testing.T) {
	assert.InDelta(t, 10.0, AngleDiff(355, 5), 1e-9)
	assert.InDelta(t, 180.0, AngleDiff(0, 180), 1e-9)
	assert.InDelta(t, 45.0, AngleDiff(-45, 0), 1e-9)
}

func TestLoopingAdvance(t *testing.T) {
	m := NewStateMachine(testTable())
	m.SetState(config.Walk, false)

	m.Update(0.25, 0, 0)
	assert.Equal(t, 1, m.FrameIndex())
	m.Update(0.5, 0, 0)
	assert.Equal(t, 0, m.FrameIndex(), "wraps to the first frame")
	assert.False(t, m.Finished())
}

func TestNonLoopingFinishes(t *testing.T) {
	m := NewStateMachine(testTable())
	m.SetState(config.Dying, false)

	m.Update(0.5, 0, 0)
	assert.Equal(t, 2, m.FrameIndex())
	assert.False(t, m.Finished())

	m.Update(0.25, 0, 0)
	assert.True(t, m.Finished())
	assert.Equal(t, 2, m.FrameIndex(), "stays on the last frame")
	assert.Equal(t, Cell{Row: 0, Col: 23}, m.Frame())

	m.Update(10, 0, 0)
	assert.Equal(t, 2, m.FrameIndex())
}

func TestSetStateResets(t *testing.T) {
	m := NewStateMachine(testTable())
	m.SetState(config.Walk, false)
	m.Update(0.3, 0, 0)
	assert.Equal(t, 1, m.FrameIndex())

	m.SetState(config.Walk, false)
	assert.Equal(t, 1, m.FrameIndex(), "same state without force keeps progress")

	m.SetState(config.Walk, true)
	assert.Equal(t, 0, m.FrameIndex())

	m.SetState(config.Dying, false)
	m.Update(1, 0, 0)
	assert.True(t, m.Finished())
	m.SetState(config.Idle, false)
	assert.False(t, m.Finished())
}

func TestSetStateIgnoresUnknown(t *testing.T) {
	m := NewStateMachine(testTable())
	m.SetState(config.Walk, false)
	m.SetState(config.Cast, true)
	assert.Equal(t, config.Walk, m.State())
}

func TestFacingOnlyChangesWithMovement(t *testing.T) {
	m := NewStateMachine(testTable())
	assert.Equal(t, DefaultFacing, m.Facing())

	m.Update(0.01, -3, 0)
	assert.Equal(t, 180, m.Facing())
	m.Update(0.01, 0, 0)
	assert.Equal(t, 180, m.Facing())
	assert.Equal(t, 6, m.Frame().Row)

	// dying is not directional
	m.SetState(config.Dying, false)
	m.Update(0.01, 0, 5)
	assert.Equal(t, 180, m.Facing())
}

func TestFrameFallback(t *testing.T) {
	m := NewStateMachine(config.AnimationTable{})
	assert.Equal(t, Cell{}, m.Frame())
	m.Update(1, 1, 0)
	assert.Equal(t, Cell{}, m.Frame())
}
