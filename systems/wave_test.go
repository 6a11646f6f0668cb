package systems

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
)

func TestWaveProgression(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	w := newTestWorld(t, worldOpts{metrics: m})
	q := &effects.Queue{}

	Step(w, frame, q)
	require.Equal(t, 1, waveOf(w).Number)
	wave1 := Enemies(w)
	require.Len(t, wave1, 6)
	spawn := arenaOf(w).EnemySpawn
	for _, e := range wave1 {
		assert.Equal(t, 5.0, health(e))
		x, y := position(e)
		assert.True(t, spawn.Contains(x, y))
	}
	assert.Contains(t, q.Sounds, cfg.SoundWave)

	for _, e := range wave1 {
		ApplyDamage(w, e, 1000, q)
	}
	for i := 0; i < 200 && waveOf(w).Number < 2; i++ {
		Step(w, frame, q)
	}

	require.Equal(t, 2, waveOf(w).Number)
	wave2 := Enemies(w)
	require.Len(t, wave2, 7)
	for _, e := range wave2 {
		assert.Equal(t, 10.0, health(e))
		assert.Equal(t, 2, components.Enemy.Get(e).Wave)
	}
	for _, e := range wave1 {
		assert.False(t, e.Valid())
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Wave))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.EnemiesKilled))

	facts := Facts(w)
	require.Len(t, facts.Waves, 1)
	snap := facts.Waves[0]
	assert.Equal(t, 1, snap.Wave)
	assert.Equal(t, 6, snap.Spawned)
	assert.Zero(t, snap.EnemiesLeft)
	assert.Greater(t, snap.Duration, 0.8)
}

func TestNoWaveWhileEnemiesDying(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	e := sturdyEnemy(w, 100, 100, 5)
	ApplyDamage(w, e, 5, effects.Discard{})

	UpdateWaves(w, effects.Discard{})
	assert.Zero(t, waveOf(w).Number)
}

func TestPauseFreezesSimulation(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	require.True(t, TogglePause(w))

	Step(w, frame, nil)
	assert.Zero(t, Now(w))
	assert.Zero(t, waveOf(w).Number)

	require.False(t, TogglePause(w))
	Step(w, frame, nil)
	assert.InDelta(t, frame, Now(w), 1e-12)
	assert.Equal(t, 1, waveOf(w).Number)
}

func TestSpawnWaveIsDeterministicForSeed(t *testing.T) {
	a := newTestWorld(t, worldOpts{})
	b := newTestWorld(t, worldOpts{})
	SpawnWave(a, 3)
	SpawnWave(b, 3)

	ea, eb := Enemies(a), Enemies(b)
	require.Len(t, ea, 8)
	require.Len(t, eb, 8)
	for i := range ea {
		ax, ay := position(ea[i])
		bx, by := position(eb[i])
		assert.Equal(t, ax, bx)
		assert.Equal(t, ay, by)
	}
}
