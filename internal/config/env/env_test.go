package env

import (
	"os"
	"path/filepath"
	"testing"

	"roulette_tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "9090")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())

	t.Setenv(httpHostEnvName, "")
	t.Setenv(httpPortEnvName, "")
	cfg, err = NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address())
}

func TestPGConfig(t *testing.T) {
	t.Setenv(dsnName, "")
	_, err := NewPGConfig()
	require.Error(t, err)

	t.Setenv(dsnName, "postgres://localhost/roulette")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/roulette", cfg.DSN())
}

func TestRedisConfig(t *testing.T) {
	t.Setenv(redisAddrEnvName, "")
	_, err := NewRedisConfig()
	require.Error(t, err)

	t.Setenv(redisAddrEnvName, "localhost:6379")
	t.Setenv(redisPasswordEnvName, "secret")
	t.Setenv(redisDBEnvName, "3")
	cfg, err := NewRedisConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Address())
	assert.Equal(t, "secret", cfg.Password())
	assert.Equal(t, 3, cfg.DB())

	t.Setenv(redisDBEnvName, "x")
	_, err = NewRedisConfig()
	require.Error(t, err)
}

func TestStorageConfig(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: config.StorageMemory},
		{raw: "memory", want: config.StorageMemory},
		{raw: " Postgres ", want: config.StoragePostgres},
		{raw: "mongo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(storageDriverEnvName, tt.raw)
			cfg, err := NewStorageConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Driver())
		})
	}
}

func TestLogConfigDefaults(t *testing.T) {
	t.Setenv(logLevelEnvName, "")
	t.Setenv(logFormatEnvName, "")
	cfg := NewLogConfig()
	assert.Equal(t, "info", cfg.Level())
	assert.Equal(t, "console", cfg.Format())

	t.Setenv(logLevelEnvName, "debug")
	t.Setenv(logFormatEnvName, "json")
	cfg = NewLogConfig()
	assert.Equal(t, "debug", cfg.Level())
	assert.Equal(t, "json", cfg.Format())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTableConfigFromYAML(t *testing.T) {
	path := writeFile(t, `
table:
  history_page_size: 12
  payouts:
    - bet: "Straight up"
      payout: "35 to 1"
      example: "17"
    - bet: "Dozen"
      payout: "2 to 1"
`)

	cfg, err := NewTableConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.HistoryPageSize())
	require.Len(t, cfg.PayoutTable(), 2)
	assert.Equal(t, "35 to 1", cfg.PayoutTable()[0].Payout)
	assert.Empty(t, cfg.PayoutTable()[1].Example)
}

func TestTableConfigDefaultPageSize(t *testing.T) {
	path := writeFile(t, `
table:
  payouts:
    - bet: "Red / Black"
      payout: "1 to 1"
`)

	cfg, err := NewTableConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, defaultHistoryPageSize, cfg.HistoryPageSize())
}

func TestTableConfigErrors(t *testing.T) {
	_, err := NewTableConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = NewTableConfigFromYAML(writeFile(t, "table: ["))
	require.Error(t, err)

	_, err = NewTableConfigFromYAML(writeFile(t, "table:\n  payouts: []\n"))
	require.Error(t, err)

	_, err = NewTableConfigFromYAML(writeFile(t, "table:\n  history_page_size: -1\n  payouts:\n    - bet: a\n      payout: b\n"))
	require.Error(t, err)

	_, err = NewTableConfigFromYAML(writeFile(t, "table:\n  payouts:\n    - bet: a\n"))
	require.Error(t, err)
}

func TestRepoTableConfig(t *testing.T) {
	cfg, err := NewTableConfigFromYAML(filepath.Join("..", "..", "..", "config.yaml"))
	require.NoError(t, err)
	assert.Len(t, cfg.PayoutTable(), 10)
	assert.Equal(t, 24, cfg.HistoryPageSize())
}
