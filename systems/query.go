package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// enemiesWithin returns the targetable enemies whose centers lie within r
// of (x, y), in spawn order. The space narrows the candidates to nearby
// cells before the exact distance test.
func enemiesWithin(w donburi.World, x, y, r float64) []*donburi.Entry {
	if r < 0 {
		return nil
	}
	space := spaceOf(w)
	size := math.Max(r*2, 1)
	query := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvQuery)
	space.Add(query)
	defer space.Remove(query)

	check := query.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	center := math2.Vec2{X: x, Y: y}
	var out []*donburi.Entry
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !isTargetable(e) {
			continue
		}
		if distance(center, components.Body.Get(e).Position) <= r+timerEpsilon {
			out = append(out, e)
		}
	}
	sortBySeq(out)
	return out
}
