package model

import "roulette_tracker/internal/roulette"

// NumberCount Номер и количество его выпадений в окне
type NumberCount struct {
	Pocket roulette.Pocket
	Count  int
}

// BetPick Одна ставка из рекомендации
type BetPick struct {
	Category   string
	Subtype    string
	Count      int     // Выпадений выбранного подтипа
	Total      int     // Учтенных спинов группы
	Payout     int     // Выплата N к 1
	Confidence float64 // Доля большинства, %
	Stake      int     // Сумма ставки
	Potential  int     // Ставка + чистый выигрыш
}

// Recommendation Комбинированная рекомендация по ставкам
type Recommendation struct {
	Sufficient  bool
	Title       string
	Odds        string
	Picks       []BetPick
	TotalStake  int
	Potential   int
	Confidence  float64
	Description string
}

// DistributionEntry Доля подтипа в группе
type DistributionEntry struct {
	Label   string
	Count   int
	Total   int
	Percent float64
}

// DistributionGroup Распределение по одной группе ставок
type DistributionGroup struct {
	Category string
	Entries  []DistributionEntry
}

// Analysis Результат пересчета для активного крупье
type Analysis struct {
	CroupierID     string
	CroupierName   string
	SessionSpins   int
	WindowSpins    int
	Frequencies    []NumberCount
	Hot            []NumberCount
	Cold           []NumberCount
	Recommendation Recommendation
	Distribution   []DistributionGroup
}

// PayoutRule Строка таблицы выплат
type PayoutRule struct {
	Bet     string
	Payout  string
	Example string
}
