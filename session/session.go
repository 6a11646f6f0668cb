// Package session turns a finished run into a record and keeps the
// history of records on disk.
package session

import (
	"time"

	"github.com/uzimpp/elemental-dungeon-sub000/systems"
)

// Record is the persisted summary of one run.
type Record struct {
	PlayID      string       `json:"playId"`
	Name        string       `json:"name"`
	Skills      []string     `json:"skills"`
	WaveReached int          `json:"waveReached"`
	Survived    float64      `json:"survived"`
	FinalHP     float64      `json:"finalHp"`
	SavedAt     time.Time    `json:"savedAt"`
	Waves       []WaveRecord `json:"waves"`
}

// WaveRecord is the player's state when a wave ended. SkillUsage is
// indexed like Record.Skills.
type WaveRecord struct {
	Wave        int     `json:"wave"`
	HP          float64 `json:"hp"`
	Stamina     float64 `json:"stamina"`
	SkillUsage  []int   `json:"skillUsage"`
	Duration    float64 `json:"duration"`
	Spawned     int     `json:"spawned"`
	EnemiesLeft int     `json:"enemiesLeft"`
}

// FromFacts builds a record from the simulation's session facts.
func FromFacts(f systems.SessionFacts, at time.Time) Record {
	r := Record{
		PlayID:      f.PlayID,
		Name:        f.Name,
		Skills:      f.Skills,
		WaveReached: f.WaveReached,
		Survived:    f.Survived,
		FinalHP:     f.FinalHP,
		SavedAt:     at.UTC(),
		Waves:       make([]WaveRecord, 0, len(f.Waves)),
	}
	for _, s := range f.Waves {
		r.Waves = append(r.Waves, WaveRecord{
			Wave:        s.Wave,
			HP:          s.HP,
			Stamina:     s.Stamina,
			SkillUsage:  s.SkillUsage,
			Duration:    s.Duration,
			Spawned:     s.Spawned,
			EnemiesLeft: s.EnemiesLeft,
		})
	}
	return r
}

// TotalCasts sums every wave's usage per deck slot.
func (r Record) TotalCasts() []int {
	out := make([]int, len(r.Skills))
	for _, w := range r.Waves {
		for i, n := range w.SkillUsage {
			if i < len(out) {
				out[i] += n
			}
		}
	}
	return out
}

// Best returns the record that reached the highest wave, breaking ties by
// survival time.
func Best(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.WaveReached > best.WaveReached ||
			(r.WaveReached == best.WaveReached && r.Survived > best.Survived) {
			best = r
		}
	}
	return best, true
}
