// Package analytics считает горячие/холодные номера и рекомендацию по ставкам
// по последним спинам активного крупье. Все функции чистые: вход не изменяется,
// одинаковый снимок дает одинаковый результат.
package analytics

import "roulette_tracker/internal/model"

const (
	// WindowSize Сколько последних спинов анализируем
	WindowSize = 200
	// MinHistory Минимум спинов сессии (без окна) для рекомендации
	MinHistory = 5
	// TotalStake Сумма, которую распределяем между ставками
	TotalStake = 200
	// StakeStep Ставки кратны этому шагу
	StakeStep = 10
	// HotColdSize Размер списков горячих и холодных номеров
	HotColdSize = 3
	// MaxPicks Сколько групп ставок попадает в рекомендацию
	MaxPicks = 3
)

// Analyze пересчитывает все производные данные для активного крупье
func Analyze(snap model.Snapshot) model.Analysis {
	session := SessionSpins(snap.Spins, snap.ActiveCroupierID)
	window := session[:min(WindowSize, len(session))]

	table := Frequencies(window)

	return model.Analysis{
		CroupierID:     snap.ActiveCroupierID,
		CroupierName:   croupierName(snap.Croupiers, snap.ActiveCroupierID),
		SessionSpins:   len(session),
		WindowSpins:    len(window),
		Frequencies:    table.Entries(),
		Hot:            HotNumbers(table),
		Cold:           ColdNumbers(table),
		Recommendation: Recommend(len(session), window),
		Distribution:   Distribution(session),
	}
}

func croupierName(croupiers []model.Croupier, id string) string {
	for _, c := range croupiers {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
