package panel

import "roulette_tracker/internal/roulette"

type SpinRequest struct {
	Pocket roulette.Pocket `json:"pocket"` // 0-36 или "00"
}

type SpinResponse struct {
	Pocket     *roulette.Pocket `json:"pocket"` // null для нераспознанной записи
	Color      string           `json:"color"`
	Timestamp  int64            `json:"timestamp"` // unix ms, ключ спина
	CroupierID string           `json:"croupier_id"`
}

type HistoryResponse struct {
	Spins      []SpinResponse `json:"spins"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalSpins int            `json:"total_spins"`
	TotalPages int            `json:"total_pages"`
}

type CroupierRequest struct {
	Name string `json:"name"`
}

type SwitchCroupierRequest struct {
	ID string `json:"id"`
}

type CroupierResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartedAt int64  `json:"started_at"` // unix ms
}

type CroupierListResponse struct {
	Croupiers []CroupierResponse `json:"croupiers"`
	ActiveID  string             `json:"active_id"`
}

type NumberCount struct {
	Pocket roulette.Pocket `json:"pocket"`
	Color  string          `json:"color"`
	Count  int             `json:"count"`
}

type BetPick struct {
	Category   string  `json:"category"`
	Subtype    string  `json:"subtype"`
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	Payout     int     `json:"payout"`     // N к 1
	Confidence float64 `json:"confidence"` // %
	Stake      int     `json:"stake"`
	Potential  int     `json:"potential"`
}

type Recommendation struct {
	Sufficient  bool      `json:"sufficient"`
	Title       string    `json:"title"`
	Odds        string    `json:"odds"`
	Picks       []BetPick `json:"picks"`
	TotalStake  int       `json:"total_stake"`
	Potential   int       `json:"potential"`
	Confidence  float64   `json:"confidence"`
	Description string    `json:"description"`
}

type DistributionEntry struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

type DistributionGroup struct {
	Category string              `json:"category"`
	Entries  []DistributionEntry `json:"entries"`
}

type AnalysisResponse struct {
	CroupierID     string              `json:"croupier_id"`
	CroupierName   string              `json:"croupier_name"`
	SessionSpins   int                 `json:"session_spins"`
	WindowSpins    int                 `json:"window_spins"`
	Frequencies    []NumberCount       `json:"frequencies"` // все 38 ячеек
	Hot            []NumberCount       `json:"hot"`
	Cold           []NumberCount       `json:"cold"`
	Recommendation Recommendation      `json:"recommendation"`
	Distribution   []DistributionGroup `json:"distribution"`
}

type PayoutRule struct {
	Bet     string `json:"bet"`
	Payout  string `json:"payout"`
	Example string `json:"example"`
}
