package panel

import (
	"context"
	"time"

	"roulette_tracker/internal/metrics"
	"roulette_tracker/internal/model"
	"roulette_tracker/internal/service/analytics"

	"github.com/rs/zerolog/log"
)

// Analysis Пересчитывает анализ для активного крупье
func (s *serv) Analysis(ctx context.Context) (*model.Analysis, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	analysis := analytics.Analyze(snap)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	return &analysis, nil
}

// publish Отдает свежий анализ подписчикам. Ошибка пересчета не отменяет изменение.
func (s *serv) publish(ctx context.Context) {
	if s.publisher == nil {
		return
	}

	analysis, err := s.Analysis(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to recompute analysis")
		return
	}
	s.publisher.Publish(*analysis)
}
