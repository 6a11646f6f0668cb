package components

import (
	"math/rand"

	"github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/yohamta/donburi"
)

// SettingsData carries the run's configuration and shared services.
type SettingsData struct {
	Config  *config.Config
	Rand    *rand.Rand
	Metrics *metrics.Collectors
	nextSeq uint64
}

// NextSeq hands out creation order numbers.
func (s *SettingsData) NextSeq() uint64 {
	s.nextSeq++
	return s.nextSeq
}

var Settings = donburi.NewComponentType[SettingsData]()

// ClockData is simulation time in seconds since the run started.
type ClockData struct {
	Now   float64
	Frame int
}

var Clock = donburi.NewComponentType[ClockData]()

type WaveData struct {
	Number  int
	Spawned int
	// StartedAt is the clock time the current wave spawned.
	StartedAt float64
}

var Wave = donburi.NewComponentType[WaveData]()
