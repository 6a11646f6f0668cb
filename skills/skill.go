package skills

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uzimpp/elemental-dungeon-sub000/config"
)

var ErrUnknownArchetype = errors.New("unknown skill type")

// Archetype selects how a skill turns a cast into world effects.
type Archetype int

const (
	Projectile Archetype = iota + 1
	Summon
	Heal
	AOE
	Slash
	Chain
)

var archetypeNames = map[Archetype]string{
	Projectile: "PROJECTILE",
	Summon:     "SUMMON",
	Heal:       "HEAL",
	AOE:        "AOE",
	Slash:      "SLASH",
	Chain:      "CHAIN",
}

func (a Archetype) String() string {
	if n, ok := archetypeNames[a]; ok {
		return n
	}
	return "UNKNOWN"
}

// ParseArchetype matches a skill_type column, case-insensitively.
func ParseArchetype(s string) (Archetype, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for a, n := range archetypeNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, s)
}

// Definition is the immutable template of a skill.
type Definition struct {
	Name        string
	Element     config.Element
	Archetype   Archetype
	Damage      float64
	Speed       float64
	Radius      float64
	Duration    float64
	Pull        bool
	HealAmount  float64
	HealSummons bool
	ChainCount  int
	Cooldown    float64
	Description string
}

// Skill is an equipped Definition plus its cooldown clock.
type Skill struct {
	Definition
	lastUse float64
	used    bool
}

func New(def Definition) *Skill {
	return &Skill{Definition: def}
}

// OffCooldown reports whether the skill may fire at now. A skill that was
// never used is always ready.
func (s *Skill) OffCooldown(now float64) bool {
	if !s.used {
		return true
	}
	return now-s.lastUse >= s.Cooldown
}

// Trigger starts the cooldown at now.
func (s *Skill) Trigger(now float64) {
	s.lastUse = now
	s.used = true
}

// LastUse returns the last activation time and whether there was one.
func (s *Skill) LastUse() (float64, bool) {
	return s.lastUse, s.used
}

// Remaining is the cooldown left at now, 0 when ready.
func (s *Skill) Remaining(now float64) float64 {
	if s.OffCooldown(now) {
		return 0
	}
	return s.Cooldown - (now - s.lastUse)
}
