package panel

import (
	"context"
	"fmt"
	"time"

	"roulette_tracker/internal/config"
	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository"
	"roulette_tracker/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	spinRepo     repository.SpinRepository
	croupierRepo repository.CroupierRepository
	activeRepo   repository.ActiveCroupierRepository
	txManager    trm.Manager
	tableCfg     config.TableConfig
	publisher    service.Publisher
	now          func() time.Time
}

// NewPanelService Панель оператора: лог спинов, крупье и пересчет анализа
func NewPanelService(
	spinRepo repository.SpinRepository,
	croupierRepo repository.CroupierRepository,
	activeRepo repository.ActiveCroupierRepository,
	txManager trm.Manager,
	tableCfg config.TableConfig,
	publisher service.Publisher,
) service.PanelService {
	return &serv{
		spinRepo:     spinRepo,
		croupierRepo: croupierRepo,
		activeRepo:   activeRepo,
		txManager:    txManager,
		tableCfg:     tableCfg,
		publisher:    publisher,
		now:          time.Now,
	}
}

// snapshot Текущее состояние хранилища целиком
func (s *serv) snapshot(ctx context.Context) (model.Snapshot, error) {
	spins, err := s.spinRepo.ListSpins(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("list spins: %w", err)
	}

	croupiers, err := s.croupierRepo.ListCroupiers(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("list croupiers: %w", err)
	}

	activeID, err := s.activeRepo.ActiveCroupierID(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("get active croupier: %w", err)
	}

	return model.Snapshot{
		Spins:            spins,
		Croupiers:        croupiers,
		ActiveCroupierID: activeID,
	}, nil
}

func (s *serv) PayoutTable() []model.PayoutRule {
	return s.tableCfg.PayoutTable()
}
