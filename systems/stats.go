package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/yohamta/donburi"
)

// SessionFacts summarises a run for whoever persists it.
type SessionFacts struct {
	PlayID      string
	Name        string
	Skills      []string
	WaveReached int
	Survived    float64
	FinalHP     float64
	Over        bool
	Waves       []components.WaveSnapshot
}

func recordCast(w donburi.World, slot int, skill *skills.Skill) {
	if s := sessionOf(w); s != nil && slot < len(s.Usage) {
		s.Usage[slot]++
	}
	if m := metricsOf(w); m != nil {
		m.SkillsCast.WithLabelValues(skill.Name, skill.Archetype.String()).Inc()
	}
}

// recordWave snapshots the player at the end of the current wave and
// resets the per-wave cast counts.
func recordWave(w donburi.World, enemiesLeft int) {
	s := sessionOf(w)
	wave := waveOf(w)
	if s == nil || wave.Number == 0 {
		return
	}

	snap := components.WaveSnapshot{
		Wave:        wave.Number,
		SkillUsage:  append([]int(nil), s.Usage...),
		Duration:    Now(w) - wave.StartedAt,
		Spawned:     wave.Spawned,
		EnemiesLeft: enemiesLeft,
	}
	if player, ok := PlayerEntry(w); ok {
		snap.HP = components.Health.Get(player).Current
		snap.Stamina = components.Player.Get(player).Stamina
	}
	s.Waves = append(s.Waves, snap)
	for i := range s.Usage {
		s.Usage[i] = 0
	}
}

// Facts collects the session summary as of now.
func Facts(w donburi.World) SessionFacts {
	f := SessionFacts{
		WaveReached: waveOf(w).Number,
		Survived:    Now(w),
		Over:        IsGameOver(w),
	}
	if s := sessionOf(w); s != nil {
		f.PlayID = s.PlayID
		f.Name = s.Name
		f.Skills = append([]string(nil), s.Skills...)
		f.Waves = append([]components.WaveSnapshot(nil), s.Waves...)
	}
	if player, ok := PlayerEntry(w); ok {
		f.FinalHP = components.Health.Get(player).Current
	}
	if e, ok := components.GameOver.First(w); ok && f.Over {
		f.Survived = components.GameOver.Get(e).At
	}
	return f
}
