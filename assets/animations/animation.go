package animations

import (
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/config"
)

// DefaultFacing is the compass angle an entity faces before it first moves
// (screen space, so 90 points down).
const DefaultFacing = 90

// Cell addresses one frame on a character sheet.
type Cell struct {
	Row int
	Col int
}

// compass angles in degrees, screen space (y grows downwards), mapped to the
// sheet row holding that facing.
var directionRows = map[int]int{
	90:  0,
	45:  1,
	0:   2,
	315: 3,
	270: 4,
	225: 5,
	180: 6,
	135: 7,
}

var compass = []int{0, 45, 90, 135, 180, 225, 270, 315}

// StateMachine drives the frame index of one character sheet.
type StateMachine struct {
	table    config.AnimationTable
	state    config.StateID
	frame    int
	timer    float64
	facing   int
	finished bool
}

func NewStateMachine(table config.AnimationTable) *StateMachine {
	return &StateMachine{
		table:  table,
		state:  config.Idle,
		facing: DefaultFacing,
	}
}

// SetState switches the active state. Unknown states are ignored.
func (m *StateMachine) SetState(state config.StateID, forceReset bool) {
	if _, ok := m.table[state]; !ok {
		return
	}
	if forceReset || state != m.state {
		m.state = state
		m.frame = 0
		m.timer = 0
		m.finished = false
	}
}

// Update advances the frame timer by dt seconds. A non-zero movement
// vector re-aims directional states.
func (m *StateMachine) Update(dt, moveX, moveY float64) {
	def, ok := m.table[m.state]
	if !ok {
		return
	}
	if def.Directional && (moveX != 0 || moveY != 0) {
		m.facing = NearestDirection(moveX, moveY)
	}
	if m.finished || def.Duration <= 0 || len(def.Frames) == 0 {
		return
	}

	m.timer += dt
	for m.timer >= def.Duration {
		m.timer -= def.Duration
		if m.frame < len(def.Frames)-1 {
			m.frame++
			continue
		}
		if def.Loop {
			m.frame = 0
			continue
		}
		m.finished = true
		m.timer = 0
		break
	}
}

// Frame returns the sheet cell for the current facing and frame. Missing
// entries fall back to the first down-facing cell.
func (m *StateMachine) Frame() Cell {
	def, ok := m.table[m.state]
	if !ok || m.frame < 0 || m.frame >= len(def.Frames) {
		return Cell{}
	}
	row, ok := directionRows[m.facing]
	if !ok {
		row = directionRows[DefaultFacing]
	}
	return Cell{Row: row, Col: def.Frames[m.frame]}
}

func (m *StateMachine) State() config.StateID { return m.state }
func (m *StateMachine) FrameIndex() int       { return m.frame }
func (m *StateMachine) Facing() int           { return m.facing }
func (m *StateMachine) Finished() bool        { return m.finished }

// Face points the machine at a direction without advancing time.
func (m *StateMachine) Face(dx, dy float64) {
	if dx != 0 || dy != 0 {
		m.facing = NearestDirection(dx, dy)
	}
}

// NearestDirection snaps a vector to the closest of the eight compass angles.
func NearestDirection(dx, dy float64) int {
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	best := compass[0]
	bestDiff := math.Inf(1)
	for _, c := range compass {
		if d := AngleDiff(angle, float64(c)); d < bestDiff {
			best = c
			bestDiff = d
		}
	}
	return best
}

// AngleDiff is the unsigned distance between two angles in degrees, in [0, 180].
func AngleDiff(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	return math.Min(diff, 360-diff)
}
