package env

import (
	"errors"
	"fmt"
	"os"

	"roulette_tracker/internal/config"
	"roulette_tracker/internal/model"

	"gopkg.in/yaml.v3"
)

const defaultHistoryPageSize = 24

type payoutRuleYAML struct {
	Bet     string `yaml:"bet"`
	Payout  string `yaml:"payout"`
	Example string `yaml:"example"`
}

type tableYAML struct {
	Table struct {
		HistoryPageSize int              `yaml:"history_page_size"`
		Payouts         []payoutRuleYAML `yaml:"payouts"`
	} `yaml:"table"`
}

type tableConfig struct {
	payouts  []model.PayoutRule
	pageSize int
}

// NewTableConfigFromYAML Читает настройки стола из yaml файла
func NewTableConfigFromYAML(path string) (config.TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table config: %w", err)
	}

	var raw tableYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse table config: %w", err)
	}

	if len(raw.Table.Payouts) == 0 {
		return nil, errors.New("payout table is empty")
	}

	payouts := make([]model.PayoutRule, 0, len(raw.Table.Payouts))
	for _, p := range raw.Table.Payouts {
		if len(p.Bet) == 0 || len(p.Payout) == 0 {
			return nil, fmt.Errorf("payout rule %+v: bet and payout are required", p)
		}
		payouts = append(payouts, model.PayoutRule{
			Bet:     p.Bet,
			Payout:  p.Payout,
			Example: p.Example,
		})
	}

	pageSize := raw.Table.HistoryPageSize
	if pageSize < 0 {
		return nil, fmt.Errorf("invalid history page size %d", pageSize)
	}
	if pageSize == 0 {
		pageSize = defaultHistoryPageSize
	}

	return &tableConfig{
		payouts:  payouts,
		pageSize: pageSize,
	}, nil
}

func (cfg *tableConfig) PayoutTable() []model.PayoutRule {
	out := make([]model.PayoutRule, len(cfg.payouts))
	copy(out, cfg.payouts)
	return out
}

func (cfg *tableConfig) HistoryPageSize() int {
	return cfg.pageSize
}
