package main

import (
	"flag"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/fonts"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/uzimpp/elemental-dungeon-sub000/scenes"
	"github.com/uzimpp/elemental-dungeon-sub000/session"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
)

const defaultDeck = "Fireball,Shadow Servant,Radiance,Chain Lightning"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	width  int
	height int
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(setup *scenes.Setup) *Game {
	g := &Game{
		width:  setup.Config.Screen.Width,
		height: setup.Config.Screen.Height,
	}
	g.scene = scenes.NewArenaScene(g, setup)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.width, g.height)
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	name := flag.String("name", "", "Player name (empty = config default)")
	deck := flag.String("deck", defaultDeck, "Comma separated skill names, one per deck slot")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address (overrides config)")
	autopilot := flag.Bool("autopilot", false, "Let the bot play")
	flag.Parse()

	conf, err := cfg.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := assets.SkillCatalog()
	if err != nil {
		log.Fatalf("Failed to load skills: %v", err)
	}

	arena, err := assets.LoadArena(assets.DefaultArenaPath, conf.Wave.SpawnMargin)
	if err != nil {
		log.Printf("Warning: %v, using a plain arena", err)
		arena = assets.DefaultArena(conf.Screen.Width, conf.Screen.Height, conf.Wave.SpawnMargin)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var store session.Store
	if gd, err := session.OpenGData(conf.Session.AppName); err != nil {
		log.Printf("Warning: Could not open save data, sessions will not persist: %v", err)
		store = &session.MemoryStore{}
	} else {
		store = gd
	}

	reg := prometheus.NewRegistry()
	collectors := metrics.New(reg)
	addr := conf.Metrics.Addr
	if *metricsAddr != "" {
		addr = *metricsAddr
	}
	if addr != "" {
		metrics.Serve(addr, reg)
	}

	setup := &scenes.Setup{
		Config:     conf,
		Arena:      arena,
		Catalog:    catalog,
		DeckNames:  skills.SplitNames(*deck),
		PlayerName: *name,
		Store:      store,
		Metrics:    collectors,
		Autopilot:  *autopilot,
	}
	if _, err := setup.NewDeck(); err != nil {
		log.Fatalf("Invalid deck %q: %v (available: %s)", *deck, err, strings.Join(catalog.Names(), ", "))
	}

	ebiten.SetWindowSize(conf.Screen.Width, conf.Screen.Height)
	ebiten.SetWindowTitle(conf.Screen.Title)
	ebiten.SetTPS(conf.Screen.FPS)

	if err := ebiten.RunGame(NewGame(setup)); err != nil {
		log.Fatal(err)
	}
}
