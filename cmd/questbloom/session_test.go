package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var envKeys = []string{
	"QUESTBLOOM_PLAYER_ID",
	"QUESTBLOOM_REDIS_ADDR",
	"QUESTBLOOM_DATA_DIR",
	"QUESTBLOOM_TIMEOUT",
}

// clearEnv unsets every questbloom variable, restoring the originals when
// the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestEnvConfigDefaults(t *testing.T) {
	clearEnv(t)

	var cfg envConfig
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, game.GuestPlayerID, cfg.PlayerID)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Empty(t, cfg.DataDir)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestEnvConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUESTBLOOM_PLAYER_ID", "player-123")
	t.Setenv("QUESTBLOOM_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("QUESTBLOOM_DATA_DIR", "/tmp/questbloom-test")
	t.Setenv("QUESTBLOOM_TIMEOUT", "5s")

	var cfg envConfig
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "player-123", cfg.PlayerID)
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, "/tmp/questbloom-test", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestBuildRepositoriesGuestRoutesLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	cfg := &envConfig{PlayerID: game.GuestPlayerID, DataDir: dir}

	repos, err := buildRepositories(cfg)
	require.NoError(t, err)
	require.NotNil(t, repos)

	// The local store creates its backing directory eagerly; the redis
	// path never touches the filesystem.
	assert.DirExists(t, dir)
}

func TestBuildRepositoriesRemoteRoutesRedis(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	cfg := &envConfig{PlayerID: "player-123", RedisAddr: "localhost:6379", DataDir: dir}

	// The redis client dials lazily, so wiring succeeds without a server.
	repos, err := buildRepositories(cfg)
	require.NoError(t, err)
	require.NotNil(t, repos)

	assert.NoDirExists(t, dir)
}
