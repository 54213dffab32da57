package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/roulette"
)

const (
	insufficientTitle       = "Insufficient data"
	insufficientDescription = "More spins are needed to make a recommendation"
	combinedTitle           = "Combined strategy"
	combinedOdds            = "Mixed"
)

// Category Группа внешних ставок
type Category string

const (
	CategoryColor  Category = "Color"
	CategoryParity Category = "Parity"
	CategoryRange  Category = "Range"
	CategoryDozen  Category = "Dozen"
	CategoryColumn Category = "Column"
)

// CategoryTally Счетчики подтипов одной группы в окне.
// Counts идут в объявленном порядке подтипов, Total - учтенные спины группы.
type CategoryTally struct {
	Category Category
	Subtypes []string
	Counts   []int
	Total    int
	Payout   int // N к 1
}

// Tallies Счетчики всех групп окна
type Tallies struct {
	Color  CategoryTally
	Parity CategoryTally
	Range  CategoryTally
	Dozen  CategoryTally
	Column CategoryTally
	Green  int
}

func newTally(c Category, payout int, subtypes ...string) CategoryTally {
	return CategoryTally{
		Category: c,
		Subtypes: subtypes,
		Counts:   make([]int, len(subtypes)),
		Payout:   payout,
	}
}

func (c *CategoryTally) add(i int) {
	c.Counts[i]++
	c.Total++
}

// Tally Раскладывает окно по группам.
// Зеленые входят в Total цвета, но не сравниваются; из остальных групп исключены.
func Tally(window []model.Spin) Tallies {
	t := Tallies{
		Color:  newTally(CategoryColor, 1, roulette.Red.String(), roulette.Black.String()),
		Parity: newTally(CategoryParity, 1, roulette.Even.String(), roulette.Odd.String()),
		Range:  newTally(CategoryRange, 1, roulette.Low.String(), roulette.High.String()),
		Dozen:  newTally(CategoryDozen, 2, roulette.FirstDozen.String(), roulette.SecondDozen.String(), roulette.ThirdDozen.String()),
		Column: newTally(CategoryColumn, 2, roulette.FirstColumn.String(), roulette.SecondColumn.String(), roulette.ThirdColumn.String()),
	}

	for _, s := range window {
		color, ok := roulette.ColorOf(s.Pocket)
		if !ok {
			continue
		}
		switch color {
		case roulette.Red:
			t.Color.add(0)
		case roulette.Black:
			t.Color.add(1)
		default:
			t.Green++
			t.Color.Total++
			continue
		}

		if parity, ok := roulette.ParityOf(s.Pocket); ok {
			t.Parity.add(int(parity))
		}
		if half, ok := roulette.HalfOf(s.Pocket); ok {
			t.Range.add(int(half))
		}
		if dozen, ok := roulette.DozenOf(s.Pocket); ok {
			t.Dozen.add(int(dozen))
		}
		if column, ok := roulette.ColumnOf(s.Pocket); ok {
			t.Column.add(int(column))
		}
	}
	return t
}

// Groups группы в объявленном порядке
func (t Tallies) Groups() []CategoryTally {
	return []CategoryTally{t.Color, t.Parity, t.Range, t.Dozen, t.Column}
}

// Majority Индекс и счетчик подтипа большинства.
// Для двух подтипов действует правило a > b ? a : b (равенство - второй),
// для трех при равенстве выигрывает объявленный раньше.
func (c CategoryTally) Majority() (int, int) {
	if len(c.Counts) == 2 {
		if c.Counts[0] > c.Counts[1] {
			return 0, c.Counts[0]
		}
		return 1, c.Counts[1]
	}

	best := 0
	for i := 1; i < len(c.Counts); i++ {
		if c.Counts[i] > c.Counts[best] {
			best = i
		}
	}
	return best, c.Counts[best]
}

// Confidence Доля большинства в процентах, 0 для пустой группы
func (c CategoryTally) Confidence() float64 {
	if c.Total == 0 {
		return 0
	}
	_, count := c.Majority()
	return float64(count) / float64(c.Total) * 100
}

// Score Уверенность, взвешенная на выплату
func (c CategoryTally) Score() float64 {
	return c.Confidence() * float64(c.Payout+1)
}

// Recommend Рекомендация по последним спинам.
// sessionCount - все спины сессии без окна, window - окно анализа.
func Recommend(sessionCount int, window []model.Spin) model.Recommendation {
	if sessionCount < MinHistory {
		return model.Recommendation{
			Title:       insufficientTitle,
			Description: insufficientDescription,
			Odds:        "-",
		}
	}

	groups := Tally(window).Groups()
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Score() > groups[j].Score()
	})
	top := groups[:MaxPicks]

	confidences := make([]float64, len(top))
	for i, g := range top {
		confidences[i] = g.Confidence()
	}
	stakes := AllocateStake(confidences, TotalStake, StakeStep)

	rec := model.Recommendation{
		Sufficient: true,
		Title:      combinedTitle,
		Odds:       combinedOdds,
		Picks:      make([]model.BetPick, 0, len(top)),
		TotalStake: TotalStake,
	}

	lines := make([]string, 0, len(top))
	for i, g := range top {
		idx, count := g.Majority()
		pick := model.BetPick{
			Category:   string(g.Category),
			Subtype:    g.Subtypes[idx],
			Count:      count,
			Total:      g.Total,
			Payout:     g.Payout,
			Confidence: confidences[i],
			Stake:      stakes[i],
			Potential:  stakes[i]*g.Payout + stakes[i],
		}
		rec.Picks = append(rec.Picks, pick)
		rec.Potential += pick.Potential
		rec.Confidence += pick.Confidence * float64(pick.Stake) / TotalStake

		lines = append(lines, fmt.Sprintf("$%d on %s: %s (%.1f%%, potential: $%d)",
			pick.Stake, pick.Category, pick.Subtype, pick.Confidence, pick.Potential))
	}
	rec.Description = strings.Join(lines, "\n")

	return rec
}

// AllocateStake Делит total пропорционально весам с округлением до step.
// Вся разница от округления уходит первой ставке, сумма всегда равна total.
// Если веса нулевые, делим поровну.
func AllocateStake(weights []float64, total, step int) []int {
	stakes := make([]int, len(weights))
	if len(weights) == 0 {
		return stakes
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}

	allocated := 0
	for i, w := range weights {
		share := 1 / float64(len(weights))
		if sum > 0 {
			share = w / sum
		}
		stakes[i] = int(math.Round(float64(total)*share/float64(step))) * step
		allocated += stakes[i]
	}

	stakes[0] += total - allocated
	return stakes
}
