package assets

import (
	"bytes"
	"embed"
	"fmt"
	"log"
	"path"

	"github.com/lafriks/go-tiled"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
)

var (
	//go:embed all:arena
	arenaFS embed.FS

	//go:embed data/skills.yaml
	skillTable []byte
)

// DefaultArenaPath is the bundled arena map.
const DefaultArenaPath = "arena/arena.tmx"

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Arena is the rectangular play field.
type Arena struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn Point
	// EnemySpawn bounds where wave enemies appear.
	EnemySpawn Rect
}

// Bounds is the whole play field.
func (a *Arena) Bounds() Rect {
	return Rect{W: a.Width, H: a.Height}
}

// DefaultArena builds a plain arena of the given size with enemies
// spawning at least margin away from the walls.
func DefaultArena(width, height int, margin float64) *Arena {
	w, h := float64(width), float64(height)
	return &Arena{
		Name:        "default",
		Width:       w,
		Height:      h,
		PlayerSpawn: Point{X: w / 2, Y: h / 2},
		EnemySpawn:  Rect{X: margin, Y: margin, W: w - 2*margin, H: h - 2*margin},
	}
}

// LoadArena parses a bundled Tiled map. Object groups named PlayerSpawn
// and EnemySpawn place the player and bound wave spawns.
func LoadArena(arenaPath string, margin float64) (*Arena, error) {
	m, err := tiled.LoadFile(arenaPath, tiled.WithFileSystem(arenaFS))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", arenaPath, err)
	}
	if m.Width <= 0 || m.Height <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("arena %s has no size", arenaPath)
	}

	arena := DefaultArena(m.Width*m.TileWidth, m.Height*m.TileHeight, margin)
	arena.Name = path.Base(arenaPath)
	if name := m.Properties.GetString("name"); name != "" {
		arena.Name = name
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.PlayerSpawn = Point{X: o.X, Y: o.Y}
			}
		case "EnemySpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				if o.Width > 0 && o.Height > 0 {
					arena.EnemySpawn = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				} else {
					log.Printf("Warning: EnemySpawn in %s has no area, using defaults", arenaPath)
				}
			}
		}
	}
	return arena, nil
}

// MustLoadArena loads the bundled arena or panics.
func MustLoadArena(margin float64) *Arena {
	arena, err := LoadArena(DefaultArenaPath, margin)
	if err != nil {
		panic(err)
	}
	return arena
}

// SkillCatalog decodes the bundled skill table.
func SkillCatalog() (*skills.Catalog, error) {
	return skills.LoadCatalog(bytes.NewReader(skillTable))
}
