package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHAIN_FACTORY_ADDRESS", "0x1111111111111111111111111111111111111111")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, int64(11155111), cfg.Chain.ChainID)
	assert.Equal(t, 10*time.Second, cfg.Chain.CallTimeout)
	assert.Equal(t, 8, cfg.Chain.SnapshotConcurrency)
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.False(t, cfg.Psql.RunMigrations)
}

func TestLoadRequiresFactory(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadFactory(t *testing.T) {
	t.Setenv("CHAIN_FACTORY_ADDRESS", "factory")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("CHAIN_FACTORY_ADDRESS", "0x1111111111111111111111111111111111111111")
	t.Setenv("CHAIN_SNAPSHOT_CONCURRENCY", "0")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("CHAIN_FACTORY_ADDRESS", "0x1111111111111111111111111111111111111111")

	t.Setenv("CHAIN_BURST", "0")
	_, err := Load()
	require.ErrorContains(t, err, "CHAIN_BURST")

	t.Setenv("CHAIN_BURST", "10")
	t.Setenv("CHAIN_REQUESTS_PER_SECOND", "0")
	_, err = Load()
	require.ErrorContains(t, err, "CHAIN_REQUESTS_PER_SECOND")

	t.Setenv("CHAIN_REQUESTS_PER_SECOND", "-1")
	_, err = Load()
	require.Error(t, err)
}
