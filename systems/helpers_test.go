package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/uzimpp/elemental-dungeon-sub000/systems/factory"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60

type worldOpts struct {
	config  func(*cfg.Config)
	deck    []skills.Definition
	metrics *metrics.Collectors
}

func newTestWorld(t *testing.T, o worldOpts) donburi.World {
	t.Helper()
	conf := cfg.Default()
	if o.config != nil {
		o.config(conf)
	}
	deck := make([]*skills.Skill, 0, len(o.deck))
	for _, d := range o.deck {
		deck = append(deck, skills.New(d))
	}
	return factory.NewWorld(factory.Options{
		Config:  conf,
		Deck:    deck,
		PlayID:  "test-play",
		Rand:    rand.New(rand.NewSource(7)),
		Metrics: o.metrics,
	})
}

func mustPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	p, ok := PlayerEntry(w)
	require.True(t, ok)
	return p
}

// sturdyEnemy spawns a wave 1 enemy with the given health.
func sturdyEnemy(w donburi.World, x, y, health float64) *donburi.Entry {
	e := factory.CreateEnemy(w, x, y, 1)
	hp := components.Health.Get(e)
	hp.Current, hp.Max = health, health
	return e
}

func health(e *donburi.Entry) float64 {
	return components.Health.Get(e).Current
}

func stateOf(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).CurrentState
}

func position(e *donburi.Entry) (float64, float64) {
	p := components.Body.Get(e).Position
	return p.X, p.Y
}

// settle ends whatever action the player is in so the next cast is only
// gated by cooldowns.
func settle(t *testing.T, w donburi.World) {
	t.Helper()
	EnterState(w, mustPlayer(t, w), cfg.Idle)
}
