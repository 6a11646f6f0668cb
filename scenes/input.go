package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/systems"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding maps an action to the keys that trigger it.
type InputBinding struct {
	Keys []ebiten.Key
}

var (
	bindMoveLeft  = InputBinding{Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}}
	bindMoveRight = InputBinding{Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}}
	bindMoveUp    = InputBinding{Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}}
	bindMoveDown  = InputBinding{Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}}
	bindSprint    = InputBinding{Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}}
	bindDash      = InputBinding{Keys: []ebiten.Key{ebiten.KeySpace}}
	bindPause     = InputBinding{Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}}

	// one binding per deck slot
	bindSlots = []InputBinding{
		{Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyJ}},
		{Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyK}},
		{Keys: []ebiten.Key{ebiten.Key3, ebiten.KeyL}},
		{Keys: []ebiten.Key{ebiten.Key4, ebiten.KeySemicolon}},
	}
)

func (b InputBinding) pressed() bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (b InputBinding) justPressed() bool {
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// UpdateInput polls the keyboard and mouse into the player's InputData.
// Must run BEFORE systems.Step in the system order.
func UpdateInput(e *ecs.ECS) {
	if bindPause.justPressed() && !systems.IsGameOver(e.World) {
		systems.TogglePause(e.World)
	}

	if systems.HasBot(e.World) {
		systems.UpdateBot(e.World)
		return
	}

	player, ok := systems.PlayerEntry(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(player)

	input.MoveX, input.MoveY = 0, 0
	if bindMoveLeft.pressed() {
		input.MoveX--
	}
	if bindMoveRight.pressed() {
		input.MoveX++
	}
	if bindMoveUp.pressed() {
		input.MoveY--
	}
	if bindMoveDown.pressed() {
		input.MoveY++
	}
	input.Sprint = bindSprint.pressed()
	if bindDash.justPressed() {
		input.Dash = true
	}

	cx, cy := ebiten.CursorPosition()
	for slot, b := range bindSlots {
		if b.justPressed() {
			input.Cast = true
			input.CastSlot = slot
			input.TargetX, input.TargetY = float64(cx), float64(cy)
			break
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !input.Cast {
		input.Cast = true
		input.CastSlot = 0
		input.TargetX, input.TargetY = float64(cx), float64(cy)
	}
}
