package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broad-phase box of a body. It is kept centered on the
// body's position.
type ObjectData struct {
	*resolv.Object
}

// Place centers the box on (x, y) and re-buckets it in its space.
func (o *ObjectData) Place(x, y float64) {
	if o == nil || o.Object == nil {
		return
	}
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase grid.
var Space = donburi.NewComponentType[resolv.Space]()
