package config

import "strings"

// StateID is a logical action state shared by the combat state machine and
// the animation table.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Sprint
	Sweep
	Shoot
	Cast
	Throw
	Hurt
	Dying
)

// AllStates lists every state that must have an animation entry.
var AllStates = []StateID{Idle, Walk, Sprint, Sweep, Shoot, Cast, Throw, Hurt, Dying}

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Sprint:    "sprint",
	Sweep:     "sweep",
	Shoot:     "shoot_arrow",
	Cast:      "cast",
	Throw:     "throw",
	Hurt:      "hurt",
	Dying:     "dying",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStateID resolves a state name as written in config files.
func ParseStateID(name string) (StateID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range stateNames {
		if id != StateNone && n == name {
			return id, true
		}
	}
	return StateNone, false
}

// IsLocking reports whether the state commits the entity to finishing its
// animation before moving or attacking again.
func (s StateID) IsLocking() bool {
	switch s {
	case Sweep, Hurt, Dying:
		return true
	}
	return false
}

// IsAction reports whether the state is one of the player's skill-cast
// actions, which slow movement instead of locking it.
func (s StateID) IsAction() bool {
	switch s {
	case Cast, Throw, Shoot:
		return true
	}
	return false
}
