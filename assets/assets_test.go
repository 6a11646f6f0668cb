package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
)

func TestLoadBundledArena(t *testing.T) {
	arena, err := LoadArena(DefaultArenaPath, 20)
	require.NoError(t, err)

	assert.Equal(t, "Dungeon Floor", arena.Name)
	assert.Equal(t, 1280.0, arena.Width)
	assert.Equal(t, 720.0, arena.Height)
	assert.Equal(t, Point{X: 640, Y: 360}, arena.PlayerSpawn)
	assert.Equal(t, Rect{X: 20, Y: 20, W: 1240, H: 680}, arena.EnemySpawn)
}

func TestLoadMissingArena(t *testing.T) {
	_, err := LoadArena("arena/missing.tmx", 20)
	assert.Error(t, err)
}

func TestDefaultArena(t *testing.T) {
	arena := DefaultArena(800, 600, 20)
	assert.Equal(t, Point{X: 400, Y: 300}, arena.PlayerSpawn)
	assert.True(t, arena.EnemySpawn.Contains(20, 20))
	assert.True(t, arena.EnemySpawn.Contains(780, 580))
	assert.False(t, arena.EnemySpawn.Contains(10, 300))
}

func TestBundledSkillCatalog(t *testing.T) {
	cat, err := SkillCatalog()
	require.NoError(t, err)

	groups := cat.ByArchetype()
	for _, a := range []skills.Archetype{skills.Projectile, skills.Summon, skills.Heal, skills.AOE, skills.Slash, skills.Chain} {
		assert.NotEmpty(t, groups[a], a.String())
	}
	chain, ok := cat.Get("Chain Lightning")
	require.True(t, ok)
	assert.Equal(t, 3, chain.ChainCount)
}
