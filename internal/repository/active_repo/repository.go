package active_repo

import (
	"context"
	"errors"

	"roulette_tracker/internal/repository"

	"github.com/redis/go-redis/v9"
)

// activeCroupierKey Ключ скаляра с ID активного крупье
const activeCroupierKey = "roulette:active_croupier_id"

type repo struct {
	rdb redis.Cmdable
}

func NewActiveCroupierRepository(rdb redis.Cmdable) repository.ActiveCroupierRepository {
	return &repo{
		rdb: rdb,
	}
}

// ActiveCroupierID - пустая строка, если ключа еще нет
func (r *repo) ActiveCroupierID(ctx context.Context) (string, error) {
	id, err := r.rdb.Get(ctx, activeCroupierKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return id, nil
}

func (r *repo) SetActiveCroupierID(ctx context.Context, id string) error {
	return r.rdb.Set(ctx, activeCroupierKey, id, 0).Err()
}
