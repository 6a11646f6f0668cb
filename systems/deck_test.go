package systems

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/yohamta/donburi"
)

var (
	bolt = skills.Definition{
		Name: "Bolt", Element: cfg.Fire, Archetype: skills.Projectile,
		Damage: 20, Speed: 300, Cooldown: 2,
	}
	servant = skills.Definition{
		Name: "Servant", Element: cfg.Shadow, Archetype: skills.Summon,
		Damage: 5, Speed: 50,
	}
	mend = skills.Definition{
		Name: "Mend", Element: cfg.Light, Archetype: skills.Heal,
		HealAmount: 20, HealSummons: true,
	}
	quake = skills.Definition{
		Name: "Quake", Element: cfg.Rock, Archetype: skills.AOE,
		Damage: 15, Radius: 100,
	}
	cleave = skills.Definition{
		Name: "Cleave", Element: cfg.Wind, Archetype: skills.Slash,
		Damage: 12, Radius: 100,
	}
	zap = skills.Definition{
		Name: "Zap", Element: cfg.Thunder, Archetype: skills.Chain,
		Damage: 5, Radius: 100, ChainCount: 3,
	}
)

func deckOf(t *testing.T, w donburi.World) *components.DeckData {
	return components.Deck.Get(mustPlayer(t, w))
}

func TestUseSkillCooldown(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{bolt}, metrics: m})
	q := &effects.Queue{}

	require.True(t, UseSkill(w, 0, 700, 360, 10, q))
	settle(t, w)
	assert.False(t, UseSkill(w, 0, 700, 360, 12-1e-9, q))
	assert.True(t, UseSkill(w, 0, 700, 360, 12, q))

	assert.Len(t, deckOf(t, w).Projectiles, 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SkillsCast.WithLabelValues("Bolt", "PROJECTILE")))
	assert.Equal(t, []int{2}, sessionOf(w).Usage)
	assert.Contains(t, q.Sounds, cfg.SoundCast)
	assert.Contains(t, q.Sounds, cfg.SoundProjectile)
}

func TestUseSkillRejects(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{bolt}})

	assert.False(t, UseSkill(w, 1, 0, 0, 0, effects.Discard{}))
	assert.False(t, UseSkill(w, -1, 0, 0, 0, effects.Discard{}))

	p := mustPlayer(t, w)
	ApplyDamage(w, p, 1000, effects.Discard{})
	assert.False(t, UseSkill(w, 0, 700, 360, 0, effects.Discard{}), "dying casters cannot cast")
	_, used := deckOf(t, w).Skills[0].LastUse()
	assert.False(t, used)
}

func TestZeroLengthAimUsesFacing(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{bolt}})
	p := mustPlayer(t, w)
	components.Body.Get(p).Facing.X, components.Body.Get(p).Facing.Y = -1, 0

	x, y := position(p)
	require.True(t, UseSkill(w, 0, x, y, 0, effects.Discard{}))

	proj := Projectiles(w)
	require.Len(t, proj, 1)
	px, py := position(proj[0])
	assert.InDelta(t, x-30, px, 1e-9)
	assert.InDelta(t, y, py, 1e-9)
	assert.Equal(t, cfg.Cast, stateOf(p))
}

func TestProjectileHitsFirstEnemy(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{bolt}})
	q := &effects.Queue{}
	enemy := sturdyEnemy(w, 740, 360, 50)

	require.True(t, UseSkill(w, 0, 740, 360, 0, q))
	proj := Projectiles(w)
	require.Len(t, proj, 1)
	px, _ := position(proj[0])
	assert.InDelta(t, 670, px, 1e-9)

	UpdateDeck(w, 0.1, q)
	assert.Equal(t, 50.0, health(enemy), "still out of reach at x=700")

	UpdateDeck(w, 0.1, q)
	assert.Equal(t, 30.0, health(enemy))
	assert.False(t, components.Body.Get(proj[0]).Alive)
	assert.Equal(t, 2, q.Count(effects.Explosion))

	PruneDead(w, q)
	assert.Empty(t, deckOf(t, w).Projectiles)
	assert.Empty(t, Projectiles(w))
}

func TestProjectileBlastAtArenaEdge(t *testing.T) {
	fast := bolt
	fast.Speed = 1000
	fast.Radius = 150
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{fast}})
	q := &effects.Queue{}
	near := sturdyEnemy(w, 1250, 300, 50)
	far := sturdyEnemy(w, 900, 100, 50)

	require.True(t, UseSkill(w, 0, 1280, 360, 0, q))
	for i := 0; i < 10 && len(deckOf(t, w).Projectiles) > 0; i++ {
		UpdateDeck(w, 0.1, q)
		PruneDead(w, q)
	}

	assert.Empty(t, deckOf(t, w).Projectiles)
	assert.Equal(t, 30.0, health(near))
	assert.Equal(t, 50.0, health(far))
}

func TestSummonEvictsOldest(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{servant}, metrics: m})
	q := &effects.Queue{}

	require.True(t, UseSkill(w, 0, 700, 360, 0, q))
	first := deckOf(t, w).Summons[0]
	for i := 1; i <= 4; i++ {
		settle(t, w)
		require.True(t, UseSkill(w, 0, 700, 360, float64(i), q))
	}
	assert.Len(t, deckOf(t, w).Summons, 5)
	second := deckOf(t, w).Summons[1]

	settle(t, w)
	require.True(t, UseSkill(w, 0, 700, 360, 5, q))
	summons := deckOf(t, w).Summons
	assert.Len(t, summons, 5)
	assert.False(t, w.Valid(first))
	assert.Equal(t, second, summons[0])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SummonsEvicted))
	assert.Equal(t, 6, q.Count(effects.Explosion))

	s := w.Entry(summons[4])
	sx, sy := position(s)
	assert.InDelta(t, 680, sx, 1e-9)
	assert.InDelta(t, 360, sy, 1e-9)
	assert.Equal(t, 5.0, components.Combat.Get(s).Damage)
	assert.Equal(t, 50.0, components.Body.Get(s).Speed)
}

func TestHealRestoresSummons(t *testing.T) {
	for _, healSummons := range []bool{true, false} {
		def := mend
		def.HealSummons = healSummons
		w := newTestWorld(t, worldOpts{deck: []skills.Definition{servant, def}})
		q := &effects.Queue{}
		p := mustPlayer(t, w)

		require.True(t, UseSkill(w, 0, 700, 360, 0, q))
		s := Summons(w)[0]
		ApplyDamage(w, p, 30, q)
		ApplyDamage(w, s, 10, q)

		settle(t, w)
		require.True(t, UseSkill(w, 1, 700, 360, 0, q))
		assert.Equal(t, 90.0, health(p))
		if healSummons {
			assert.Equal(t, 50.0, health(s))
			assert.Equal(t, 2, q.Count(effects.HealGlow))
		} else {
			assert.Equal(t, 40.0, health(s))
			assert.Equal(t, 1, q.Count(effects.HealGlow))
		}
	}
}

func TestAOEDamagesWithinRadius(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{quake}})
	q := &effects.Queue{}
	center := sturdyEnemy(w, 300, 300, 50)
	edge := sturdyEnemy(w, 400, 300, 50)
	outside := sturdyEnemy(w, 420, 300, 50)

	require.True(t, UseSkill(w, 0, 300, 300, 0, q))
	assert.Equal(t, 35.0, health(center))
	assert.Equal(t, 35.0, health(edge))
	assert.Equal(t, 50.0, health(outside))

	require.Equal(t, 1, q.Count(effects.Explosion))
	fx := q.Effects[0]
	assert.Equal(t, 100.0, fx.Size)
	assert.Equal(t, 0.1, fx.Duration)
}

func TestAOEPull(t *testing.T) {
	pull := quake
	pull.Pull = true
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{pull}})
	e := sturdyEnemy(w, 380, 300, 50)

	require.True(t, UseSkill(w, 0, 300, 300, 0, effects.Discard{}))
	x, _ := position(e)
	assert.InDelta(t, 332, x, 1e-9)
}

func TestSlashArcBoundary(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{cleave}})
	q := &effects.Queue{}
	p := mustPlayer(t, w)
	px, py := position(p)

	at := func(deg float64) *donburi.Entry {
		rad := deg * math.Pi / 180
		return sturdyEnemy(w, px+80*math.Cos(rad), py+80*math.Sin(rad), 50)
	}
	inside := at(29.999)
	outside := at(30.001)
	below := at(-29.999)
	behind := at(180)
	tooFar := sturdyEnemy(w, px+120, py, 50)

	require.True(t, UseSkill(w, 0, px+100, py, 0, q))
	assert.Equal(t, 38.0, health(inside))
	assert.Equal(t, 38.0, health(below))
	assert.Equal(t, 50.0, health(outside))
	assert.Equal(t, 50.0, health(behind))
	assert.Equal(t, 50.0, health(tooFar))

	assert.Equal(t, cfg.Sweep, stateOf(p))
	require.Equal(t, 1, q.Count(effects.SlashArc))
	arc := q.Effects[0]
	assert.InDelta(t, -math.Pi/6, arc.StartAngle, 1e-9)
	assert.InDelta(t, math.Pi/3, arc.SweepAngle, 1e-9)
}

func TestChainStartsAtCaster(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{zap}})
	q := &effects.Queue{}
	px, py := position(mustPlayer(t, w))
	near := sturdyEnemy(w, px+60, py, 50)
	byCursor := sturdyEnemy(w, 140, 60, 50)

	require.True(t, UseSkill(w, 0, 140, 60, 0, q))
	assert.Equal(t, 45.0, health(near))
	assert.Equal(t, 50.0, health(byCursor), "the cursor does not seed the chain")

	require.Equal(t, 1, q.Count(effects.Line))
	link := q.Effects[0]
	assert.Equal(t, px, link.X)
	assert.Equal(t, py, link.Y)
	assert.Equal(t, px+60, link.EndX)
}

func TestChainJumpsToNearest(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{zap}})
	q := &effects.Queue{}
	px, py := position(mustPlayer(t, w))
	var row []*donburi.Entry
	for i := 0; i < 5; i++ {
		row = append(row, sturdyEnemy(w, px+60+float64(i)*50, py, 50))
	}

	require.True(t, UseSkill(w, 0, 100, 100, 0, q))
	for i, e := range row {
		if i < 3 {
			assert.Equal(t, 45.0, health(e), "link %d", i)
		} else {
			assert.Equal(t, 50.0, health(e), "enemy %d is past the chain count", i)
		}
	}
	assert.Equal(t, 3, q.Count(effects.Line))
}

func TestChainStopsWhenNothingInRange(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{zap}})
	q := &effects.Queue{}
	px, py := position(mustPlayer(t, w))
	a := sturdyEnemy(w, px+60, py, 50)
	b := sturdyEnemy(w, px+110, py, 50)
	lonely := sturdyEnemy(w, px+400, py, 50)

	require.True(t, UseSkill(w, 0, px+400, py, 0, q))
	assert.Equal(t, 45.0, health(a))
	assert.Equal(t, 45.0, health(b))
	assert.Equal(t, 50.0, health(lonely))
	assert.Equal(t, 2, q.Count(effects.Line))
}

func TestCastWaitsForSweep(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{cleave, bolt}})
	p := mustPlayer(t, w)

	require.True(t, UseSkill(w, 0, 700, 360, 0, effects.Discard{}))
	UpdatePlayer(w, frame, effects.Discard{})

	in := components.Input.Get(p)
	in.Cast, in.CastSlot, in.TargetX, in.TargetY = true, 1, 900, 360
	UpdatePlayer(w, frame, effects.Discard{})

	assert.False(t, in.Cast, "the request is dropped, not queued")
	assert.Equal(t, cfg.Sweep, stateOf(p))
	assert.Empty(t, Projectiles(w))
	_, used := deckOf(t, w).Skills[1].LastUse()
	assert.False(t, used, "a rejected cast keeps its cooldown")

	for i := 0; i < 30; i++ {
		UpdatePlayer(w, frame, effects.Discard{})
	}
	require.Equal(t, cfg.Idle, stateOf(p))
	assert.True(t, UseSkill(w, 1, 900, 360, 0.6, effects.Discard{}))
}

func TestCastWaitsForCast(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{bolt, quake}})
	e := sturdyEnemy(w, 300, 300, 50)

	require.True(t, UseSkill(w, 0, 900, 360, 0, effects.Discard{}))
	assert.False(t, UseSkill(w, 1, 300, 300, 0, effects.Discard{}))
	assert.Equal(t, 50.0, health(e))
}

func TestUseSkillNilSink(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{bolt}})
	assert.NotPanics(t, func() {
		assert.True(t, UseSkill(w, 0, 900, 360, 0, nil))
	})
	assert.Len(t, Projectiles(w), 1)
}
