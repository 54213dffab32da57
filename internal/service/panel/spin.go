package panel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roulette_tracker/internal/metrics"
	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository"
	"roulette_tracker/internal/roulette"
	"roulette_tracker/internal/service"
	"roulette_tracker/internal/service/analytics"

	"github.com/rs/zerolog/log"
)

// RecordSpin Записывает спин активному крупье.
// Время спина - текущее с точностью до миллисекунды, но строго позже последнего в логе.
func (s *serv) RecordSpin(ctx context.Context, pocket roulette.Pocket) (*model.Spin, error) {
	if !pocket.Valid() {
		return nil, fmt.Errorf("record spin: %w", roulette.ErrInvalidPocket)
	}

	var spin *model.Spin

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		croupierID, err := s.activeCroupier(txCtx)
		if err != nil {
			return err
		}

		latest, err := s.spinRepo.LatestSpinTime(txCtx)
		if err != nil {
			return fmt.Errorf("latest spin time: %w", err)
		}

		ts := time.UnixMilli(s.now().UnixMilli())
		if !latest.IsZero() && !ts.After(latest) {
			ts = latest.Add(time.Millisecond)
		}

		spin = &model.Spin{
			Pocket:     pocket,
			Timestamp:  ts,
			CroupierID: croupierID,
		}
		return s.spinRepo.AddSpin(txCtx, spin)
	})
	if err != nil {
		return nil, err
	}

	metrics.SpinsRecorded.Inc()
	log.Info().
		Str("croupier_id", spin.CroupierID).
		Str("pocket", spin.Pocket.String()).
		Int64("ts", spin.Timestamp.UnixMilli()).
		Msg("spin recorded")

	s.publish(ctx)
	return spin, nil
}

// activeCroupier ID активного крупье, который точно существует
func (s *serv) activeCroupier(ctx context.Context) (string, error) {
	id, err := s.activeRepo.ActiveCroupierID(ctx)
	if err != nil {
		return "", fmt.Errorf("get active croupier: %w", err)
	}
	if id == "" {
		return "", service.ErrNoActiveCroupier
	}

	_, err = s.croupierRepo.GetCroupier(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", service.ErrNoActiveCroupier
		}
		return "", fmt.Errorf("get croupier %s: %w", id, err)
	}
	return id, nil
}

// DeleteSpin Удаляет один спин по времени
func (s *serv) DeleteSpin(ctx context.Context, ts time.Time) error {
	err := s.spinRepo.DeleteSpin(ctx, ts)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return service.ErrSpinNotFound
		}
		return fmt.Errorf("delete spin: %w", err)
	}

	metrics.SpinsDeleted.Inc()
	log.Info().Int64("ts", ts.UnixMilli()).Msg("spin deleted")

	s.publish(ctx)
	return nil
}

// ClearHistory Очищает весь лог, крупье остаются
func (s *serv) ClearHistory(ctx context.Context) error {
	err := s.spinRepo.ClearSpins(ctx)
	if err != nil {
		return fmt.Errorf("clear spins: %w", err)
	}

	metrics.HistoryCleared.Inc()
	log.Info().Msg("history cleared")

	s.publish(ctx)
	return nil
}

// History Страница истории активного крупье, от новых к старым. Страницы с 1.
func (s *serv) History(ctx context.Context, page int) (*model.HistoryPage, error) {
	if page < 1 {
		return nil, service.ErrInvalidPage
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	session := analytics.SessionSpins(snap.Spins, snap.ActiveCroupierID)
	size := s.tableCfg.HistoryPageSize()
	totalPages := max(1, (len(session)+size-1)/size)

	from := min((page-1)*size, len(session))
	to := min(from+size, len(session))

	return &model.HistoryPage{
		Spins:      session[from:to],
		Page:       page,
		PageSize:   size,
		TotalSpins: len(session),
		TotalPages: totalPages,
	}, nil
}
