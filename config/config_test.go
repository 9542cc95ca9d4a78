package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "fairwager", cfg.Database.DBName)
	assert.Equal(t, 5*time.Second, cfg.Game.BettingWindow)
	assert.Equal(t, 100*time.Millisecond, cfg.Game.TickInterval)
	assert.InDelta(t, 0.03, cfg.Game.HouseEdge, 1e-9)
	assert.InDelta(t, 0.95, cfg.Game.RTP, 1e-9)
	assert.Equal(t, 5, cfg.Settlement.MaxAttempts)
	assert.False(t, cfg.NATS.Enabled)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9999
game:
  house_edge: 0.05
  rtp: 0.97
  betting_window: 2s
settlement:
  max_attempts: 3
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.InDelta(t, 0.05, cfg.Game.HouseEdge, 1e-9)
	assert.InDelta(t, 0.97, cfg.Game.RTP, 1e-9)
	assert.Equal(t, 2*time.Second, cfg.Game.BettingWindow)
	assert.Equal(t, 3, cfg.Settlement.MaxAttempts)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FW_GAME_HOUSE_EDGE", "0.01")
	t.Setenv("FW_DATABASE_HOST", "db.internal")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 0.01, cfg.Game.HouseEdge, 1e-9)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoad_RejectsBadGameConstants(t *testing.T) {
	t.Setenv("FW_GAME_HOUSE_EDGE", "1.5")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_RejectsRakeHeavyRTP(t *testing.T) {
	// At rtp <= 0.5 the pvp rake exceeds the winner's wager.
	t.Setenv("FW_GAME_RTP", "0.5")
	_, err := Load("")
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "fairwager", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/fairwager?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
