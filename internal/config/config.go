package config

import (
	"roulette_tracker/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
}

// StorageConfig Где хранится состояние панели: memory или postgres
type StorageConfig interface {
	Driver() string
}

type LogConfig interface {
	Level() string
	Format() string
}

// TableConfig Настройки стола из config.yaml
type TableConfig interface {
	PayoutTable() []model.PayoutRule
	HistoryPageSize() int
}
