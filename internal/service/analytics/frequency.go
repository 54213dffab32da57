package analytics

import (
	"sort"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/roulette"
)

// FrequencyTable Счетчики по всем 38 ячейкам, индекс - roulette.Pocket.Index()
type FrequencyTable [roulette.PocketCount]int

// Frequencies Таблица частот окна. Неизвестные ячейки пропускаются.
func Frequencies(window []model.Spin) FrequencyTable {
	var table FrequencyTable
	for _, s := range window {
		if i := s.Pocket.Index(); i >= 0 {
			table[i]++
		}
	}
	return table
}

func (t FrequencyTable) Count(p roulette.Pocket) int {
	i := p.Index()
	if i < 0 {
		return 0
	}
	return t[i]
}

func (t FrequencyTable) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Entries все ячейки в порядке таблицы, включая нулевые
func (t FrequencyTable) Entries() []model.NumberCount {
	entries := make([]model.NumberCount, 0, roulette.PocketCount)
	for _, p := range roulette.All() {
		entries = append(entries, model.NumberCount{Pocket: p, Count: t.Count(p)})
	}
	return entries
}

// numbered номера 1-36 по возрастанию, 0 и 00 исключены
func (t FrequencyTable) numbered() []model.NumberCount {
	entries := make([]model.NumberCount, 0, roulette.MaxNumber)
	for n := 1; n <= roulette.MaxNumber; n++ {
		p := roulette.MustNumber(n)
		entries = append(entries, model.NumberCount{Pocket: p, Count: t.Count(p)})
	}
	return entries
}

// HotNumbers Три самых частых номера. При равенстве выигрывает меньший номер.
func HotNumbers(t FrequencyTable) []model.NumberCount {
	entries := t.numbered()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries[:HotColdSize]
}

// ColdNumbers Три самых редких из выпавших номеров.
// Если выпавших меньше трех, добавляем невыпавшие по возрастанию номера.
func ColdNumbers(t FrequencyTable) []model.NumberCount {
	entries := t.numbered()

	seen := make([]model.NumberCount, 0, len(entries))
	unseen := make([]model.NumberCount, 0, len(entries))
	for _, e := range entries {
		if e.Count > 0 {
			seen = append(seen, e)
		} else {
			unseen = append(unseen, e)
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return seen[i].Count < seen[j].Count
	})

	if len(seen) >= HotColdSize {
		return seen[:HotColdSize]
	}

	return append(seen, unseen[:HotColdSize-len(seen)]...)
}
