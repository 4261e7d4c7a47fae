package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadConfig_PoolDefaults(t *testing.T) {
	writeEnvFile(t, "APP_PORT=8080\nDB_HOST=localhost\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 10, cfg.DB.MaxIdleConns)
	require.Equal(t, 100, cfg.DB.MaxOpenConns)
	require.Equal(t, 0, cfg.Redis.PoolSize)
}

func TestLoadConfig_PoolOverrides(t *testing.T) {
	writeEnvFile(t, "DB_MAX_IDLE_CONNS=5\nDB_MAX_OPEN_CONNS=25\nREDIS_POOL_SIZE=20\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 5, cfg.DB.MaxIdleConns)
	require.Equal(t, 25, cfg.DB.MaxOpenConns)
	require.Equal(t, 20, cfg.Redis.PoolSize)
}
