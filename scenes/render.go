package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/fonts"
	"github.com/uzimpp/elemental-dungeon-sub000/systems"
	"github.com/yohamta/donburi/ecs"
)

var (
	floorColor  = color.RGBA{24, 22, 30, 255}
	wallColor   = color.RGBA{70, 64, 90, 255}
	barBack     = color.RGBA{0, 0, 0, 160}
	staminaFill = color.RGBA{230, 200, 60, 255}
	slotReady   = color.RGBA{60, 60, 80, 220}
	slotCooling = color.RGBA{30, 30, 40, 220}
)

// fade scales a premultiplied color by a in [0, 1].
func fade(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	arena := components.Level.Get(level).Arena
	vector.FillRect(screen, 0, 0, float32(arena.Width), float32(arena.Height), floorColor, false)
	vector.StrokeRect(screen, 1, 1, float32(arena.Width)-2, float32(arena.Height)-2, 2, wallColor, false)
}

func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	for _, d := range systems.DrawData(e.World) {
		x, y, r := float32(d.X), float32(d.Y), float32(d.Radius)
		c := d.Color
		if d.Flash {
			c = cfg.White
		}
		if d.Dying {
			c = fade(c, 0.4)
		}
		vector.FillCircle(screen, x, y, r, c, true)

		if d.Kind == components.KindProjectile {
			continue
		}

		// facing tick
		rad := float64(d.Facing) * math.Pi / 180
		vector.StrokeLine(screen, x, y,
			x+r*float32(math.Cos(rad)), y+r*float32(math.Sin(rad)),
			2, cfg.Gray, true)

		if d.MaxHealth > 0 && !d.Dying {
			drawBar(screen, x-r, y-r-8, 2*r, 4, d.Health/d.MaxHealth, cfg.Green)
		}
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, ratio float64, fill color.RGBA) {
	ratio = math.Max(0, math.Min(1, ratio))
	vector.FillRect(screen, x, y, w, h, barBack, false)
	vector.FillRect(screen, x, y, w*float32(ratio), h, fill, false)
}

// DrawEffects renders the active transient effects.
func DrawEffects(screen *ebiten.Image, active []*effects.Active) {
	for _, a := range active {
		left := 1 - a.Progress
		x, y := float32(a.X), float32(a.Y)
		switch a.Kind {
		case effects.Explosion:
			r := float32(a.Size * (0.5 + 0.5*a.Progress))
			vector.StrokeCircle(screen, x, y, r, 3, fade(a.Color, left), true)
		case effects.HealGlow:
			vector.FillCircle(screen, x, y, float32(a.Size), fade(a.Color, 0.5*left), true)
		case effects.SlashArc:
			drawArc(screen, a, fade(a.Color, left))
		case effects.Line:
			vector.StrokeLine(screen, x, y, float32(a.EndX), float32(a.EndY), float32(math.Max(a.Size, 1)), fade(a.Color, left), true)
		case effects.Afterimage:
			vector.FillCircle(screen, x, y, float32(a.Size), fade(a.Color, 0.5*left), true)
			vector.StrokeLine(screen, x, y, float32(a.EndX), float32(a.EndY), 2, fade(a.Color, left), true)
		}
	}
}

const arcSegments = 12

func drawArc(screen *ebiten.Image, a *effects.Active, c color.RGBA) {
	cx, cy := a.X, a.Y
	px, py := cx+a.Size*math.Cos(a.StartAngle), cy+a.Size*math.Sin(a.StartAngle)
	for i := 1; i <= arcSegments; i++ {
		ang := a.StartAngle + a.SweepAngle*float64(i)/arcSegments
		nx, ny := cx+a.Size*math.Cos(ang), cy+a.Size*math.Sin(ang)
		vector.StrokeLine(screen, float32(px), float32(py), float32(nx), float32(ny), 3, c, true)
		px, py = nx, ny
	}
}

// DrawHUD shows health, stamina, the wave and the deck's cooldowns.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	player, ok := systems.PlayerEntry(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(player)
	p := components.Player.Get(player)
	deck := components.Deck.Get(player)
	wave := components.Wave.Get(components.Wave.MustFirst(e.World))
	now := systems.Now(e.World)

	drawBar(screen, 16, 16, 200, 12, hp.Ratio(), cfg.Red)
	drawBar(screen, 16, 32, 200, 6, p.Stamina/p.MaxStamina, staminaFill)

	hud := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("%s  HP %.0f/%.0f", p.Name, hp.Current, hp.Max), hud, 224, 28, cfg.White)
	text.Draw(screen, fmt.Sprintf("Wave %d  Enemies %d", wave.Number, len(systems.Enemies(e.World))), hud, 16, 58, cfg.White)

	small := fonts.HUDSmall.Get()
	h := float32(screen.Bounds().Dy())
	for i, s := range deck.Skills {
		x := float32(16 + i*132)
		bg := slotReady
		label := s.Name
		if rem := s.Remaining(now); rem > 0 {
			bg = slotCooling
			label = fmt.Sprintf("%s %.1f", s.Name, rem)
		}
		vector.FillRect(screen, x, h-48, 124, 32, bg, false)
		vector.FillRect(screen, x, h-48, 4, 32, s.Element.PrimaryColor(), false)
		text.Draw(screen, fmt.Sprintf("%d %s", i+1, label), small, int(x)+10, int(h)-28, cfg.White)
	}
}

func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(e.World) {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 150}, false)
	title := fonts.Title.Get()
	msg := "PAUSED"
	w := text.BoundString(title, msg).Dx()
	text.Draw(screen, msg, title, (b.Dx()-w)/2, b.Dy()/2, cfg.White)
}

// DrawBanner centers msg in the upper third of the screen.
func DrawBanner(screen *ebiten.Image, msg string, alpha float64) {
	title := fonts.Title.Get()
	b := screen.Bounds()
	w := text.BoundString(title, msg).Dx()
	text.Draw(screen, msg, title, (b.Dx()-w)/2, b.Dy()/3, fade(cfg.White, alpha))
}
