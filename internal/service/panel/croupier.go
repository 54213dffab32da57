package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roulette_tracker/internal/metrics"
	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository"
	"roulette_tracker/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultCroupierName = "Initial croupier"

// Bootstrap Готовит хранилище к работе: создает первого крупье,
// если их нет, и чинит указатель на активного.
func (s *serv) Bootstrap(ctx context.Context) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		croupiers, err := s.croupierRepo.ListCroupiers(txCtx)
		if err != nil {
			return fmt.Errorf("list croupiers: %w", err)
		}

		if len(croupiers) == 0 {
			c, err := s.createCroupier(txCtx, defaultCroupierName)
			if err != nil {
				return err
			}
			log.Info().Str("croupier_id", c.ID).Msg("default croupier created")
			return nil
		}

		activeID, err := s.activeRepo.ActiveCroupierID(txCtx)
		if err != nil {
			return fmt.Errorf("get active croupier: %w", err)
		}
		for _, c := range croupiers {
			if c.ID == activeID {
				return nil
			}
		}

		// Указателя нет или он висячий - берем самого раннего крупье
		log.Warn().
			Str("croupier_id", activeID).
			Str("fallback_id", croupiers[0].ID).
			Msg("active croupier pointer repaired")
		return s.activeRepo.SetActiveCroupierID(txCtx, croupiers[0].ID)
	})
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	return nil
}

// AddCroupier Новый крупье сразу становится активным
func (s *serv) AddCroupier(ctx context.Context, name string) (*model.Croupier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, service.ErrEmptyCroupierName
	}

	var croupier *model.Croupier
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		croupier, err = s.createCroupier(txCtx, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.CroupierSwitches.Inc()
	log.Info().Str("croupier_id", croupier.ID).Str("name", croupier.Name).Msg("croupier added")

	s.publish(ctx)
	return croupier, nil
}

func (s *serv) createCroupier(ctx context.Context, name string) (*model.Croupier, error) {
	croupier := &model.Croupier{
		ID:        uuid.New().String(),
		Name:      name,
		StartedAt: s.now(),
	}

	if err := s.croupierRepo.CreateCroupier(ctx, croupier); err != nil {
		return nil, fmt.Errorf("create croupier: %w", err)
	}
	if err := s.activeRepo.SetActiveCroupierID(ctx, croupier.ID); err != nil {
		return nil, fmt.Errorf("set active croupier: %w", err)
	}
	return croupier, nil
}

// SwitchCroupier Делает активным существующего крупье
func (s *serv) SwitchCroupier(ctx context.Context, id string) (*model.Croupier, error) {
	croupier, err := s.croupierRepo.GetCroupier(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrCroupierNotFound
		}
		return nil, fmt.Errorf("get croupier: %w", err)
	}

	if err := s.activeRepo.SetActiveCroupierID(ctx, croupier.ID); err != nil {
		return nil, fmt.Errorf("set active croupier: %w", err)
	}

	metrics.CroupierSwitches.Inc()
	log.Info().Str("croupier_id", croupier.ID).Msg("croupier switched")

	s.publish(ctx)
	return croupier, nil
}

func (s *serv) Croupiers(ctx context.Context) (*model.CroupierList, error) {
	croupiers, err := s.croupierRepo.ListCroupiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list croupiers: %w", err)
	}

	activeID, err := s.activeRepo.ActiveCroupierID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active croupier: %w", err)
	}

	return &model.CroupierList{
		Croupiers: croupiers,
		ActiveID:  activeID,
	}, nil
}
