package memory_repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// state Состояние панели: лог спинов, крупье и указатель на активного
type state struct {
	spins     []model.Spin // в порядке добавления
	croupiers []model.Croupier
	activeID  string
}

// StateRepo Хранилище в памяти. Реализует все три репозитория панели.
type StateRepo struct {
	mtx   sync.RWMutex
	state state
}

// NewStateRepo Конструктор пустого хранилища
func NewStateRepo() *StateRepo {
	return &StateRepo{
		state: state{
			spins:     make([]model.Spin, 0),
			croupiers: make([]model.Croupier, 0),
		},
	}
}

var (
	_ repository.SpinRepository           = (*StateRepo)(nil)
	_ repository.CroupierRepository       = (*StateRepo)(nil)
	_ repository.ActiveCroupierRepository = (*StateRepo)(nil)
)

// AddSpin Добавляет спин в конец лога
func (r *StateRepo) AddSpin(_ context.Context, spin *model.Spin) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, s := range r.state.spins {
		if s.Timestamp.Equal(spin.Timestamp) {
			return fmt.Errorf("spin at %d already exists", spin.Timestamp.UnixMilli())
		}
	}
	r.state.spins = append(r.state.spins, *spin)
	return nil
}

// ListSpins Копия лога от новых к старым
func (r *StateRepo) ListSpins(_ context.Context) ([]model.Spin, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	spins := make([]model.Spin, len(r.state.spins))
	copy(spins, r.state.spins)
	sort.SliceStable(spins, func(i, j int) bool {
		return spins[i].Timestamp.After(spins[j].Timestamp)
	})
	return spins, nil
}

// LatestSpinTime Время последнего спина, нулевое если лог пуст
func (r *StateRepo) LatestSpinTime(_ context.Context) (time.Time, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var latest time.Time
	for _, s := range r.state.spins {
		if s.Timestamp.After(latest) {
			latest = s.Timestamp
		}
	}
	return latest, nil
}

// DeleteSpin Удаляет спин по времени
func (r *StateRepo) DeleteSpin(_ context.Context, ts time.Time) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for i, s := range r.state.spins {
		if s.Timestamp.Equal(ts) {
			r.state.spins = append(r.state.spins[:i], r.state.spins[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ClearSpins Очищает весь лог
func (r *StateRepo) ClearSpins(_ context.Context) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.spins = make([]model.Spin, 0)
	return nil
}

func (r *StateRepo) CreateCroupier(_ context.Context, croupier *model.Croupier) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, c := range r.state.croupiers {
		if c.ID == croupier.ID {
			return fmt.Errorf("croupier %s already exists", croupier.ID)
		}
	}
	r.state.croupiers = append(r.state.croupiers, *croupier)
	return nil
}

// ListCroupiers Крупье по времени начала смены
func (r *StateRepo) ListCroupiers(_ context.Context) ([]model.Croupier, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	croupiers := make([]model.Croupier, len(r.state.croupiers))
	copy(croupiers, r.state.croupiers)
	sort.SliceStable(croupiers, func(i, j int) bool {
		return croupiers[i].StartedAt.Before(croupiers[j].StartedAt)
	})
	return croupiers, nil
}

func (r *StateRepo) GetCroupier(_ context.Context, id string) (*model.Croupier, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, c := range r.state.croupiers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *StateRepo) ActiveCroupierID(_ context.Context) (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state.activeID, nil
}

func (r *StateRepo) SetActiveCroupierID(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.activeID = id
	return nil
}

// TxManager Менеджер "транзакций" для хранилища в памяти: замыкания выполняются по одному
type TxManager struct {
	mtx sync.Mutex
}

var _ trm.Manager = (*TxManager)(nil)

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return fn(ctx)
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
