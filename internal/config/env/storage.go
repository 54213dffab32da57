package env

import (
	"fmt"
	"os"
	"strings"

	"roulette_tracker/internal/config"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"
	logLevelEnvName      = "LOG_LEVEL"
	logFormatEnvName     = "LOG_FORMAT"
)

type storageConfig struct {
	driver string
}

// NewStorageConfig По умолчанию храним все в памяти
func NewStorageConfig() (config.StorageConfig, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv(storageDriverEnvName)))
	switch driver {
	case "":
		driver = config.StorageMemory
	case config.StorageMemory, config.StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	return &storageConfig{
		driver: driver,
	}, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.driver
}

type logConfig struct {
	level  string
	format string
}

// NewLogConfig level - имя уровня zerolog, format - console или json
func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}
	format := os.Getenv(logFormatEnvName)
	if len(format) == 0 {
		format = "console"
	}

	return &logConfig{
		level:  level,
		format: format,
	}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Format() string {
	return cfg.format
}
