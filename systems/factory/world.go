package factory

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/uzimpp/elemental-dungeon-sub000/archetypes"
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/yohamta/donburi"
)

// Options configure a new run. Zero values fall back to defaults.
type Options struct {
	Config     *config.Config
	Arena      *assets.Arena
	Deck       []*skills.Skill
	PlayerName string
	PlayID     string
	Rand       *rand.Rand
	Metrics    *metrics.Collectors
}

// NewWorld builds a world holding the run singletons, the arena, the
// broad-phase space and the player. No wave is spawned yet.
func NewWorld(opts Options) donburi.World {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	arena := opts.Arena
	if arena == nil {
		arena = assets.DefaultArena(cfg.Screen.Width, cfg.Screen.Height, cfg.Wave.SpawnMargin)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	playID := opts.PlayID
	if playID == "" {
		playID = uuid.NewString()
	}

	w := donburi.NewWorld()

	game := archetypes.Game.Spawn(w)
	components.Settings.SetValue(game, components.SettingsData{
		Config:  cfg,
		Rand:    rng,
		Metrics: opts.Metrics,
	})

	CreateLevel(w, arena)
	CreateSpace(w,
		int(math.Ceil(arena.Width)),
		int(math.Ceil(arena.Height)),
		cfg.Space.CellSize, cfg.Space.CellSize,
	)

	names := make([]string, len(opts.Deck))
	for i, s := range opts.Deck {
		names[i] = s.Name
	}
	player := CreatePlayer(w, arena.PlayerSpawn.X, arena.PlayerSpawn.Y, opts.Deck, opts.PlayerName)

	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		PlayID: playID,
		Name:   components.Player.Get(player).Name,
		Skills: names,
		Usage:  make([]int, len(opts.Deck)),
	})

	return w
}
