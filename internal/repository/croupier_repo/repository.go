package croupier_repo

import (
	"context"
	"errors"

	"roulette_tracker/internal/model"
	"roulette_tracker/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "croupiers"
	colID        = "id"
	colName      = "name"
	colStartedAt = "started_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewCroupierRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.CroupierRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateCroupier - создает крупье (ID, Name, StartedAt)
func (r *repo) CreateCroupier(ctx context.Context, croupier *model.Croupier) error {
	query := psql.Insert(table).
		Columns(colID, colName, colStartedAt).
		Values(croupier.ID, croupier.Name, croupier.StartedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// ListCroupiers - все крупье по времени начала
func (r *repo) ListCroupiers(ctx context.Context) ([]model.Croupier, error) {
	query := psql.Select(colID, colName, colStartedAt).
		From(table).
		OrderBy(colStartedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	croupiers := make([]model.Croupier, 0)
	for rows.Next() {
		var c model.Croupier
		if err := rows.Scan(&c.ID, &c.Name, &c.StartedAt); err != nil {
			return nil, err
		}
		croupiers = append(croupiers, c)
	}

	return croupiers, rows.Err()
}

// GetCroupier - крупье по ID, repository.ErrNotFound если его нет
func (r *repo) GetCroupier(ctx context.Context, id string) (*model.Croupier, error) {
	query := psql.Select(colID, colName, colStartedAt).
		From(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c model.Croupier
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&c.ID, &c.Name, &c.StartedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &c, nil
}
