package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Ratio is Current/Max, 0 for an empty pool.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
