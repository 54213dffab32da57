package analytics

import (
	"sort"

	"roulette_tracker/internal/model"
)

// SessionSpins Все спины крупье, от новых к старым.
// Порядок задается временем спина, а не порядком во входном логе.
func SessionSpins(log []model.Spin, croupierID string) []model.Spin {
	spins := make([]model.Spin, 0)
	if croupierID == "" {
		return spins
	}

	for _, s := range log {
		if s.CroupierID == croupierID {
			spins = append(spins, s)
		}
	}

	sort.SliceStable(spins, func(i, j int) bool {
		return spins[i].Timestamp.After(spins[j].Timestamp)
	})
	return spins
}

// RecentWindow Последние size спинов крупье (или меньше)
func RecentWindow(log []model.Spin, croupierID string, size int) []model.Spin {
	spins := SessionSpins(log, croupierID)
	if size < 0 {
		size = 0
	}
	return spins[:min(size, len(spins))]
}
