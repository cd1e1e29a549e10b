package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "jwt", cfg.Auth.Provider)
	assert.Equal(t, 7, cfg.Geo.StoragePrecision)
	assert.Equal(t, 4, cfg.Geo.SearchPrecision)
	assert.False(t, cfg.Geo.NeighborSearch)
	assert.Equal(t, 0, cfg.Proximity.MaxResults)
	assert.Equal(t, 30*time.Second, cfg.Location.UpdateInterval)
	assert.Equal(t, "memory", cfg.Index.Backend)
	assert.Nil(t, cfg.Index.Redis)
	assert.Equal(t, defaultStreamBufferSize, cfg.Stream.BufferSize)
	assert.Equal(t, defaultMaxMessageLength, cfg.Chat.MaxMessageLength)
	assert.Equal(t, "mem://", cfg.Media.BucketURL)
	assert.EqualValues(t, 5<<20, cfg.Media.MaxUploadBytes)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Geo:      &GeoConfig{StoragePrecision: 9, SearchPrecision: 5, NeighborSearch: true},
		Location: &LocationConfig{UpdateInterval: time.Minute, RateLimit: 2, RateBurst: 1},
		Index:    &IndexConfig{Backend: "redis", Redis: &RedisConfig{Addr: "localhost:6379"}},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 9, cfg.Geo.StoragePrecision)
	assert.Equal(t, 5, cfg.Geo.SearchPrecision)
	assert.True(t, cfg.Geo.NeighborSearch)
	assert.Equal(t, time.Minute, cfg.Location.UpdateInterval)
	assert.InDelta(t, 2.0, cfg.Location.RateLimit, 1e-9)
	assert.Equal(t, 1, cfg.Location.RateBurst)
	assert.Equal(t, "redis", cfg.Index.Backend)
	assert.Equal(t, defaultRedisKeyPrefix, cfg.Index.Redis.KeyPrefix)
}

func TestLoadWithEnv_EnvOverridesYaml(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
geo:
  searchPrecision: 4
  neighborSearch: false
location:
  updateInterval: 30s
index:
  backend: memory
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), yaml, 0o600))
	t.Chdir(dir)
	t.Setenv("GEO_NEIGHBORSEARCH", "true")
	t.Setenv("LOCATION_UPDATEINTERVAL", "45s")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Geo.SearchPrecision)
	assert.True(t, cfg.Geo.NeighborSearch)
	assert.Equal(t, 45*time.Second, cfg.Location.UpdateInterval)
	assert.Equal(t, "memory", cfg.Index.Backend)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
