package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/uzimpp/elemental-dungeon-sub000/session"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/uzimpp/elemental-dungeon-sub000/systems"
	"github.com/uzimpp/elemental-dungeon-sub000/systems/factory"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	deck := flag.String("deck", "Fireball,Shadow Servant,Radiance,Chain Lightning", "Comma separated skill names")
	seconds := flag.Float64("seconds", 120, "Simulated time limit")
	seed := flag.Int64("seed", 1, "Wave spawn seed")
	save := flag.Bool("save", false, "Append the result to the saved session history")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address while running")
	flag.Parse()

	conf, err := cfg.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	catalog, err := assets.SkillCatalog()
	if err != nil {
		log.Fatalf("Failed to load skills: %v", err)
	}
	equipped, err := skills.BuildDeck(catalog, skills.SplitNames(*deck), conf.Skill.DeckSize)
	if err != nil {
		log.Fatalf("Invalid deck: %v", err)
	}
	arena, err := assets.LoadArena(assets.DefaultArenaPath, conf.Wave.SpawnMargin)
	if err != nil {
		log.Printf("Warning: %v, using a plain arena", err)
		arena = nil
	}

	reg := prometheus.NewRegistry()
	collectors := metrics.New(reg)
	if *metricsAddr != "" {
		metrics.Serve(*metricsAddr, reg)
	}

	w := factory.NewWorld(factory.Options{
		Config:     conf,
		Arena:      arena,
		Deck:       equipped,
		PlayerName: "bot",
		Rand:       rand.New(rand.NewSource(*seed)),
		Metrics:    collectors,
	})
	systems.EnableBot(w)

	dt := 1 / float64(conf.Screen.FPS)
	for systems.Now(w) < *seconds && !systems.IsGameOver(w) {
		systems.UpdateBot(w)
		systems.Step(w, dt, effects.Discard{})
	}

	facts := systems.Facts(w)
	log.Printf("play %s: reached wave %d after %.1fs, survived=%v, hp=%.0f",
		facts.PlayID, facts.WaveReached, systems.Now(w), facts.Survived, facts.FinalHP)
	for _, wr := range facts.Waves {
		log.Printf("  wave %d: %v casts", wr.Wave, wr.SkillUsage)
	}

	if !*save {
		return
	}
	store, err := session.OpenGData(conf.Session.AppName)
	if err != nil {
		log.Fatalf("Failed to open save data: %v", err)
	}
	if err := store.Save(session.FromFacts(facts, time.Now())); err != nil {
		log.Fatalf("Failed to save session: %v", err)
	}
}
