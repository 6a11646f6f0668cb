package systems

import (
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateWaves starts the next wave once no enemy entity remains, dying
// ones included.
func UpdateWaves(w donburi.World, sink effects.Sink) {
	if IsGameOver(w) || len(Enemies(w)) > 0 {
		return
	}

	wave := waveOf(w)
	recordWave(w, 0)
	wave.Number++
	SpawnWave(w, wave.Number)

	sink.Play(cfg.SoundWave)
	if m := metricsOf(w); m != nil {
		m.Wave.Set(float64(wave.Number))
	}
}

// SpawnWave creates the enemies of wave n at uniform random points of the
// arena's spawn area and returns how many it made.
func SpawnWave(w donburi.World, n int) int {
	conf := configOf(w)
	area := arenaOf(w).EnemySpawn
	rng := settingsOf(w).Rand

	count := conf.EnemyCount(n)
	for i := 0; i < count; i++ {
		x := area.X + rng.Float64()*area.W
		y := area.Y + rng.Float64()*area.H
		factory.CreateEnemy(w, x, y, n)
	}

	wave := waveOf(w)
	wave.Spawned = count
	wave.StartedAt = Now(w)
	return count
}
