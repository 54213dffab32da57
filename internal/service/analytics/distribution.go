package analytics

import (
	"roulette_tracker/internal/model"
	"roulette_tracker/internal/roulette"
)

// Distribution Распределение спинов сессии по группам ставок.
// Цвет считается от всех спинов, остальные группы - от спинов без зеленых.
func Distribution(spins []model.Spin) []model.DistributionGroup {
	t := Tally(spins)

	color := model.DistributionGroup{
		Category: string(CategoryColor),
		Entries: []model.DistributionEntry{
			entry(t.Color.Subtypes[0], t.Color.Counts[0], t.Color.Total),
			entry(t.Color.Subtypes[1], t.Color.Counts[1], t.Color.Total),
			entry(roulette.Green.String(), t.Green, t.Color.Total),
		},
	}

	groups := []model.DistributionGroup{color}
	for _, g := range []CategoryTally{t.Parity, t.Range, t.Dozen, t.Column} {
		group := model.DistributionGroup{Category: string(g.Category)}
		for i, label := range g.Subtypes {
			group.Entries = append(group.Entries, entry(label, g.Counts[i], g.Total))
		}
		groups = append(groups, group)
	}
	return groups
}

func entry(label string, count, total int) model.DistributionEntry {
	e := model.DistributionEntry{Label: label, Count: count, Total: total}
	if total > 0 {
		e.Percent = float64(count) / float64(total) * 100
	}
	return e
}
