package service

import (
	"context"
	"errors"
	"time"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/roulette"
)

var (
	ErrNoActiveCroupier  = errors.New("no active croupier")
	ErrCroupierNotFound  = errors.New("croupier not found")
	ErrEmptyCroupierName = errors.New("croupier name is empty")
	ErrSpinNotFound      = errors.New("spin not found")
	ErrInvalidPage       = errors.New("invalid page")
)

// PanelService Операции оператора над логом спинов и крупье
type PanelService interface {
	Bootstrap(ctx context.Context) error
	RecordSpin(ctx context.Context, pocket roulette.Pocket) (*model.Spin, error)
	DeleteSpin(ctx context.Context, ts time.Time) error
	ClearHistory(ctx context.Context) error
	AddCroupier(ctx context.Context, name string) (*model.Croupier, error)
	SwitchCroupier(ctx context.Context, id string) (*model.Croupier, error)
	Croupiers(ctx context.Context) (*model.CroupierList, error)
	History(ctx context.Context, page int) (*model.HistoryPage, error)
	Analysis(ctx context.Context) (*model.Analysis, error)
	PayoutTable() []model.PayoutRule
}

// Publisher Получает свежий анализ после каждого изменения
type Publisher interface {
	Publish(analysis model.Analysis)
}
