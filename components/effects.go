package components

import "github.com/yohamta/donburi"

// FlashData tracks the hit flash shown after taking damage.
type FlashData struct {
	Remaining float64 // seconds
}

var Flash = donburi.NewComponentType[FlashData]()
