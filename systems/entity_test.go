package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestClampToArena(t *testing.T) {
	arena := assets.DefaultArena(200, 100, 10)
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 50, 50, 50, 50},
		{"left", -5, 50, 10, 50},
		{"bottom right", 500, 500, 190, 90},
		{"top", 100, 3, 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &components.BodyData{Position: math2.Vec2{X: tt.x, Y: tt.y}, Radius: 10}
			ClampToArena(b, arena)
			assert.Equal(t, tt.wantX, b.Position.X)
			assert.Equal(t, tt.wantY, b.Position.Y)
		})
	}
}

func TestMoveTowardDoesNotOvershoot(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	e := sturdyEnemy(w, 100, 100, 50)

	left := MoveToward(w, e, 100, 110, 1)
	assert.Equal(t, 10.0, left)
	x, y := position(e)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 110, y, 1e-9)
	assert.Zero(t, MoveToward(w, e, 100, 110, 1))
}
