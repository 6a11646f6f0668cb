package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
)

func TestDrawDataOrder(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{servant, bolt}})
	require.True(t, UseSkill(w, 0, 700, 360, 0, effects.Discard{}))
	settle(t, w)
	require.True(t, UseSkill(w, 1, 640, 100, 0, effects.Discard{}))
	e := sturdyEnemy(w, 100, 100, 50)
	ApplyDamage(w, e, 10, effects.Discard{})

	data := DrawData(w)
	require.Len(t, data, 4)
	assert.Equal(t, components.KindProjectile, data[0].Kind)
	assert.Equal(t, cfg.Fire.PrimaryColor(), data[0].Color)

	assert.Equal(t, components.KindEnemy, data[1].Kind)
	assert.True(t, data[1].Flash)
	assert.Equal(t, 40.0, data[1].Health)
	assert.Equal(t, cfg.Hurt, data[1].State)

	assert.Equal(t, components.KindSummon, data[2].Kind)
	assert.Equal(t, cfg.Shadow.PrimaryColor(), data[2].Color)

	assert.Equal(t, components.KindPlayer, data[3].Kind)
	assert.Equal(t, 270, data[3].Facing, "faces the last cast")
}
