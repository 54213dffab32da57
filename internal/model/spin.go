package model

import (
	"time"

	"roulette_tracker/internal/roulette"
)

// Spin Один зафиксированный спин. Timestamp уникален и служит ключом (точность - миллисекунды).
type Spin struct {
	Pocket     roulette.Pocket
	Timestamp  time.Time
	CroupierID string
}

// Croupier Сессия крупье. Активна ровно одна.
type Croupier struct {
	ID        string
	Name      string
	StartedAt time.Time
}

// CroupierList Все крупье и ID активного
type CroupierList struct {
	Croupiers []Croupier
	ActiveID  string
}

// Snapshot Снимок лога, набора крупье и указателя на активного крупье
type Snapshot struct {
	Spins            []Spin
	Croupiers        []Croupier
	ActiveCroupierID string
}

// HistoryPage Страница истории спинов активного крупье
type HistoryPage struct {
	Spins      []Spin
	Page       int
	PageSize   int
	TotalSpins int
	TotalPages int
}
