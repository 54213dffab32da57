package spin_repo

import (
	"context"
	"time"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository"
	"roulette_tracker/internal/roulette"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	table         = "spins"
	colTimestamp  = "ts"
	colPocket     = "pocket"
	colCroupierID = "croupier_id"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// conn Транзакция из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// AddSpin - сохраняет спин. Время хранится в миллисекундах и является ключом
func (r *repo) AddSpin(ctx context.Context, spin *model.Spin) error {
	query := psql.Insert(table).
		Columns(colTimestamp, colPocket, colCroupierID).
		Values(spin.Timestamp.UnixMilli(), spin.Pocket.String(), spin.CroupierID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// ListSpins - весь лог, от новых к старым
func (r *repo) ListSpins(ctx context.Context) ([]model.Spin, error) {
	query := psql.Select(colTimestamp, colPocket, colCroupierID).
		From(table).
		OrderBy(colTimestamp + " DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spins := make([]model.Spin, 0)
	for rows.Next() {
		var (
			ts         int64
			rawPocket  string
			croupierID string
		)
		if err := rows.Scan(&ts, &rawPocket, &croupierID); err != nil {
			return nil, err
		}

		// Неверное значение не ломает анализ: ячейка остается неизвестной и исключается
		pocket, err := roulette.Parse(rawPocket)
		if err != nil {
			log.Warn().Err(err).Int64("ts", ts).Msg("unclassifiable spin in log")
		}

		spins = append(spins, model.Spin{
			Pocket:     pocket,
			Timestamp:  time.UnixMilli(ts),
			CroupierID: croupierID,
		})
	}

	return spins, rows.Err()
}

// LatestSpinTime - время последнего спина, нулевое время если лог пуст
func (r *repo) LatestSpinTime(ctx context.Context) (time.Time, error) {
	query := psql.Select("COALESCE(MAX(" + colTimestamp + "), 0)").
		From(table)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return time.Time{}, err
	}

	var ts int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&ts)
	if err != nil {
		return time.Time{}, err
	}
	if ts == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(ts), nil
}

// DeleteSpin - удаляет спин по времени
func (r *repo) DeleteSpin(ctx context.Context, ts time.Time) error {
	query := psql.Delete(table).
		Where(sq.Eq{colTimestamp: ts.UnixMilli()})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// Если rowsAffected = 0 - то записи не существует
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ClearSpins - очищает весь лог
func (r *repo) ClearSpins(ctx context.Context) error {
	sqlStr, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}
