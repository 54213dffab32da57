package memory_repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository"
	"roulette_tracker/internal/roulette"
)

func TestStateRepo_Spins(t *testing.T) {
	ctx := context.Background()
	r := NewStateRepo()
	base := time.UnixMilli(1_700_000_000_000)

	latest, err := r.LatestSpinTime(ctx)
	require.NoError(t, err)
	assert.True(t, latest.IsZero())

	for i, n := range []int{5, 17, 0} {
		require.NoError(t, r.AddSpin(ctx, &model.Spin{
			Pocket:     roulette.MustNumber(n),
			Timestamp:  base.Add(time.Duration(i) * time.Millisecond),
			CroupierID: "c1",
		}))
	}
	assert.Error(t, r.AddSpin(ctx, &model.Spin{Timestamp: base, CroupierID: "c1"}), "duplicate timestamp")

	spins, err := r.ListSpins(ctx)
	require.NoError(t, err)
	require.Len(t, spins, 3)
	assert.Equal(t, "0", spins[0].Pocket.String())
	assert.Equal(t, "5", spins[2].Pocket.String())

	latest, err = r.LatestSpinTime(ctx)
	require.NoError(t, err)
	assert.True(t, latest.Equal(base.Add(2*time.Millisecond)))

	require.NoError(t, r.DeleteSpin(ctx, base.Add(time.Millisecond)))
	assert.ErrorIs(t, r.DeleteSpin(ctx, base.Add(time.Millisecond)), repository.ErrNotFound)

	spins, err = r.ListSpins(ctx)
	require.NoError(t, err)
	assert.Len(t, spins, 2)

	// Копия не связана с внутренним состоянием
	spins[0].CroupierID = "changed"
	again, err := r.ListSpins(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c1", again[0].CroupierID)

	require.NoError(t, r.ClearSpins(ctx))
	spins, err = r.ListSpins(ctx)
	require.NoError(t, err)
	assert.Empty(t, spins)
}

func TestStateRepo_Croupiers(t *testing.T) {
	ctx := context.Background()
	r := NewStateRepo()
	now := time.Now()

	require.NoError(t, r.CreateCroupier(ctx, &model.Croupier{ID: "late", Name: "Late", StartedAt: now.Add(time.Hour)}))
	require.NoError(t, r.CreateCroupier(ctx, &model.Croupier{ID: "early", Name: "Early", StartedAt: now}))
	assert.Error(t, r.CreateCroupier(ctx, &model.Croupier{ID: "early"}))

	croupiers, err := r.ListCroupiers(ctx)
	require.NoError(t, err)
	require.Len(t, croupiers, 2)
	assert.Equal(t, "early", croupiers[0].ID)

	c, err := r.GetCroupier(ctx, "late")
	require.NoError(t, err)
	assert.Equal(t, "Late", c.Name)

	_, err = r.GetCroupier(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	id, err := r.ActiveCroupierID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, r.SetActiveCroupierID(ctx, "late"))
	id, err = r.ActiveCroupierID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "late", id)
}

func TestTxManager_Serializes(t *testing.T) {
	m := NewTxManager()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do(ctx, func(ctx context.Context) error {
				mu.Lock()
				inside++
				maxSeen = max(maxSeen, inside)
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}
