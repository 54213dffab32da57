package repository

import (
	"context"
	"errors"
	"time"

	"roulette_tracker/internal/model"
)

var ErrNotFound = errors.New("not found")

// SpinRepository Лог спинов. ListSpins отдает весь лог от новых к старым.
type SpinRepository interface {
	AddSpin(ctx context.Context, spin *model.Spin) error
	ListSpins(ctx context.Context) ([]model.Spin, error)
	LatestSpinTime(ctx context.Context) (time.Time, error)
	DeleteSpin(ctx context.Context, ts time.Time) error
	ClearSpins(ctx context.Context) error
}

// CroupierRepository Набор крупье. ListCroupiers отдает по времени начала.
type CroupierRepository interface {
	CreateCroupier(ctx context.Context, croupier *model.Croupier) error
	ListCroupiers(ctx context.Context) ([]model.Croupier, error)
	GetCroupier(ctx context.Context, id string) (*model.Croupier, error)
}

// ActiveCroupierRepository Указатель на активного крупье, хранится отдельно.
// Пустая строка - указатель еще не сохранен.
type ActiveCroupierRepository interface {
	ActiveCroupierID(ctx context.Context) (string, error)
	SetActiveCroupierID(ctx context.Context, id string) error
}
