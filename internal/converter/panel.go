package converter

import (
	dto "roulette_tracker/internal/api/dto/panel"
	"roulette_tracker/internal/model"
	"roulette_tracker/internal/roulette"
)

func colorName(p roulette.Pocket) string {
	c, ok := roulette.ColorOf(p)
	if !ok {
		return ""
	}
	return c.String()
}

func ToSpinResponse(spin model.Spin) dto.SpinResponse {
	res := dto.SpinResponse{
		Color:      colorName(spin.Pocket),
		Timestamp:  spin.Timestamp.UnixMilli(),
		CroupierID: spin.CroupierID,
	}
	if spin.Pocket.Valid() {
		pocket := spin.Pocket
		res.Pocket = &pocket
	}
	return res
}

func ToHistoryResponse(page model.HistoryPage) dto.HistoryResponse {
	spins := make([]dto.SpinResponse, 0, len(page.Spins))
	for _, s := range page.Spins {
		spins = append(spins, ToSpinResponse(s))
	}

	return dto.HistoryResponse{
		Spins:      spins,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalSpins: page.TotalSpins,
		TotalPages: page.TotalPages,
	}
}

func ToCroupierResponse(c model.Croupier) dto.CroupierResponse {
	return dto.CroupierResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartedAt: c.StartedAt.UnixMilli(),
	}
}

func ToCroupierListResponse(list model.CroupierList) dto.CroupierListResponse {
	croupiers := make([]dto.CroupierResponse, 0, len(list.Croupiers))
	for _, c := range list.Croupiers {
		croupiers = append(croupiers, ToCroupierResponse(c))
	}

	return dto.CroupierListResponse{
		Croupiers: croupiers,
		ActiveID:  list.ActiveID,
	}
}

func ToAnalysisResponse(a model.Analysis) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		CroupierID:     a.CroupierID,
		CroupierName:   a.CroupierName,
		SessionSpins:   a.SessionSpins,
		WindowSpins:    a.WindowSpins,
		Frequencies:    toNumberCounts(a.Frequencies),
		Hot:            toNumberCounts(a.Hot),
		Cold:           toNumberCounts(a.Cold),
		Recommendation: toRecommendation(a.Recommendation),
		Distribution:   toDistribution(a.Distribution),
	}
}

func toNumberCounts(counts []model.NumberCount) []dto.NumberCount {
	out := make([]dto.NumberCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.NumberCount{
			Pocket: c.Pocket,
			Color:  colorName(c.Pocket),
			Count:  c.Count,
		})
	}
	return out
}

func toRecommendation(r model.Recommendation) dto.Recommendation {
	picks := make([]dto.BetPick, 0, len(r.Picks))
	for _, p := range r.Picks {
		picks = append(picks, dto.BetPick{
			Category:   p.Category,
			Subtype:    p.Subtype,
			Count:      p.Count,
			Total:      p.Total,
			Payout:     p.Payout,
			Confidence: p.Confidence,
			Stake:      p.Stake,
			Potential:  p.Potential,
		})
	}

	return dto.Recommendation{
		Sufficient:  r.Sufficient,
		Title:       r.Title,
		Odds:        r.Odds,
		Picks:       picks,
		TotalStake:  r.TotalStake,
		Potential:   r.Potential,
		Confidence:  r.Confidence,
		Description: r.Description,
	}
}

func toDistribution(groups []model.DistributionGroup) []dto.DistributionGroup {
	out := make([]dto.DistributionGroup, 0, len(groups))
	for _, g := range groups {
		entries := make([]dto.DistributionEntry, 0, len(g.Entries))
		for _, e := range g.Entries {
			entries = append(entries, dto.DistributionEntry{
				Label:   e.Label,
				Count:   e.Count,
				Total:   e.Total,
				Percent: e.Percent,
			})
		}
		out = append(out, dto.DistributionGroup{Category: g.Category, Entries: entries})
	}
	return out
}

func ToPayoutTable(rules []model.PayoutRule) []dto.PayoutRule {
	out := make([]dto.PayoutRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, dto.PayoutRule{
			Bet:     r.Bet,
			Payout:  r.Payout,
			Example: r.Example,
		})
	}
	return out
}
