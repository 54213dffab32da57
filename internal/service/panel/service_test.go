package panel

import (
	"context"
	"sync"
	"testing"
	"time"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository/memory_repo"
	"roulette_tracker/internal/roulette"
	"roulette_tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableCfg struct {
	pageSize int
}

func (c tableCfg) PayoutTable() []model.PayoutRule {
	return []model.PayoutRule{{Bet: "Red / Black", Payout: "1 to 1", Example: "red"}}
}

func (c tableCfg) HistoryPageSize() int {
	return c.pageSize
}

type recorder struct {
	mtx       sync.Mutex
	published []model.Analysis
}

func (r *recorder) Publish(a model.Analysis) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.published = append(r.published, a)
}

func (r *recorder) last() model.Analysis {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.published[len(r.published)-1]
}

func (r *recorder) count() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.published)
}

type fixture struct {
	serv  *serv
	repo  *memory_repo.StateRepo
	pub   *recorder
	clock time.Time
}

func newFixture(t *testing.T, pageSize int) *fixture {
	t.Helper()

	f := &fixture{
		repo:  memory_repo.NewStateRepo(),
		pub:   &recorder{},
		clock: time.UnixMilli(1_700_000_000_000),
	}
	s := NewPanelService(f.repo, f.repo, f.repo, memory_repo.NewTxManager(), tableCfg{pageSize: pageSize}, f.pub).(*serv)
	s.now = func() time.Time { return f.clock }
	f.serv = s
	return f
}

func TestBootstrapCreatesDefaultCroupier(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)

	require.NoError(t, f.serv.Bootstrap(ctx))

	list, err := f.serv.Croupiers(ctx)
	require.NoError(t, err)
	require.Len(t, list.Croupiers, 1)
	assert.Equal(t, defaultCroupierName, list.Croupiers[0].Name)
	assert.Equal(t, list.Croupiers[0].ID, list.ActiveID)

	// Повторный запуск ничего не меняет
	require.NoError(t, f.serv.Bootstrap(ctx))
	list, err = f.serv.Croupiers(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Croupiers, 1)
}

func TestBootstrapRepairsDanglingPointer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)

	early := model.Croupier{ID: "a", Name: "Ana", StartedAt: f.clock}
	late := model.Croupier{ID: "b", Name: "Bo", StartedAt: f.clock.Add(time.Hour)}
	require.NoError(t, f.repo.CreateCroupier(ctx, &late))
	require.NoError(t, f.repo.CreateCroupier(ctx, &early))
	require.NoError(t, f.repo.SetActiveCroupierID(ctx, "gone"))

	require.NoError(t, f.serv.Bootstrap(ctx))

	id, err := f.repo.ActiveCroupierID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", id)
}

func TestRecordSpinRequiresActiveCroupier(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)

	_, err := f.serv.RecordSpin(ctx, roulette.MustNumber(5))
	require.ErrorIs(t, err, service.ErrNoActiveCroupier)

	require.NoError(t, f.repo.SetActiveCroupierID(ctx, "ghost"))
	_, err = f.serv.RecordSpin(ctx, roulette.MustNumber(5))
	require.ErrorIs(t, err, service.ErrNoActiveCroupier)

	_, err = f.serv.RecordSpin(ctx, roulette.Pocket{})
	require.ErrorIs(t, err, roulette.ErrInvalidPocket)

	assert.Zero(t, f.pub.count())
}

func TestRecordSpinTimestampsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)
	require.NoError(t, f.serv.Bootstrap(ctx))

	first, err := f.serv.RecordSpin(ctx, roulette.MustNumber(1))
	require.NoError(t, err)
	assert.Equal(t, f.clock.UnixMilli(), first.Timestamp.UnixMilli())

	// Часы не сдвинулись
	second, err := f.serv.RecordSpin(ctx, roulette.DoubleZero)
	require.NoError(t, err)
	assert.Equal(t, first.Timestamp.Add(time.Millisecond), second.Timestamp)

	// Часы ушли назад
	f.clock = f.clock.Add(-time.Minute)
	third, err := f.serv.RecordSpin(ctx, roulette.MustNumber(0))
	require.NoError(t, err)
	assert.True(t, third.Timestamp.After(second.Timestamp))

	f.clock = f.clock.Add(time.Hour)
	fourth, err := f.serv.RecordSpin(ctx, roulette.MustNumber(36))
	require.NoError(t, err)
	assert.Equal(t, f.clock.UnixMilli(), fourth.Timestamp.UnixMilli())

	assert.Equal(t, 4, f.pub.last().SessionSpins)
	assert.Equal(t, first.CroupierID, fourth.CroupierID)
}

func TestRecordSpinPublishesRecommendation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)
	require.NoError(t, f.serv.Bootstrap(ctx))

	for _, n := range []int{1, 1, 1, 3, 5} {
		f.clock = f.clock.Add(time.Second)
		_, err := f.serv.RecordSpin(ctx, roulette.MustNumber(n))
		require.NoError(t, err)
	}

	require.Equal(t, 5, f.pub.count())
	rec := f.pub.last().Recommendation
	require.True(t, rec.Sufficient)
	assert.Equal(t, 200, rec.TotalStake)
	assert.Equal(t, 460, rec.Potential)
	assert.Equal(t, roulette.MustNumber(1), f.pub.last().Hot[0].Pocket)
}

func TestSessionsAreIsolatedByCroupier(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)
	require.NoError(t, f.serv.Bootstrap(ctx))

	for i := 0; i < 6; i++ {
		f.clock = f.clock.Add(time.Second)
		_, err := f.serv.RecordSpin(ctx, roulette.MustNumber(2))
		require.NoError(t, err)
	}

	f.clock = f.clock.Add(time.Second)
	bob, err := f.serv.AddCroupier(ctx, "  Bob  ")
	require.NoError(t, err)
	assert.Equal(t, "Bob", bob.Name)

	analysis, err := f.serv.Analysis(ctx)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, analysis.CroupierID)
	assert.Equal(t, "Bob", analysis.CroupierName)
	assert.Zero(t, analysis.SessionSpins)
	assert.False(t, analysis.Recommendation.Sufficient)

	list, err := f.serv.Croupiers(ctx)
	require.NoError(t, err)
	require.Len(t, list.Croupiers, 2)

	_, err = f.serv.SwitchCroupier(ctx, list.Croupiers[0].ID)
	require.NoError(t, err)
	analysis, err = f.serv.Analysis(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, analysis.SessionSpins)
}

func TestCroupierErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)

	_, err := f.serv.AddCroupier(ctx, "   ")
	require.ErrorIs(t, err, service.ErrEmptyCroupierName)

	_, err = f.serv.SwitchCroupier(ctx, "nope")
	require.ErrorIs(t, err, service.ErrCroupierNotFound)
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 24)
	require.NoError(t, f.serv.Bootstrap(ctx))

	var spins []*model.Spin
	for _, n := range []int{4, 8, 15} {
		f.clock = f.clock.Add(time.Second)
		spin, err := f.serv.RecordSpin(ctx, roulette.MustNumber(n))
		require.NoError(t, err)
		spins = append(spins, spin)
	}

	require.NoError(t, f.serv.DeleteSpin(ctx, spins[1].Timestamp))
	require.ErrorIs(t, f.serv.DeleteSpin(ctx, spins[1].Timestamp), service.ErrSpinNotFound)
	assert.Equal(t, 2, f.pub.last().SessionSpins)

	require.NoError(t, f.serv.ClearHistory(ctx))
	assert.Zero(t, f.pub.last().SessionSpins)

	list, err := f.serv.Croupiers(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Croupiers, 1)
}

func TestHistoryPaging(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 2)
	require.NoError(t, f.serv.Bootstrap(ctx))

	for n := 1; n <= 5; n++ {
		f.clock = f.clock.Add(time.Second)
		_, err := f.serv.RecordSpin(ctx, roulette.MustNumber(n))
		require.NoError(t, err)
	}

	page, err := f.serv.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalSpins)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Spins, 2)
	assert.Equal(t, roulette.MustNumber(5), page.Spins[0].Pocket)
	assert.Equal(t, roulette.MustNumber(4), page.Spins[1].Pocket)

	page, err = f.serv.History(ctx, 3)
	require.NoError(t, err)
	require.Len(t, page.Spins, 1)
	assert.Equal(t, roulette.MustNumber(1), page.Spins[0].Pocket)

	page, err = f.serv.History(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, page.Spins)

	_, err = f.serv.History(ctx, 0)
	require.ErrorIs(t, err, service.ErrInvalidPage)
}

func TestHistoryEmpty(t *testing.T) {
	f := newFixture(t, 24)

	page, err := f.serv.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, page.Spins)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPayoutTable(t *testing.T) {
	f := newFixture(t, 24)
	require.Len(t, f.serv.PayoutTable(), 1)
}
