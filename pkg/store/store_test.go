package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	path    string
	backend string
}

func (c testConfig) BasePath() string   { return c.path }
func (c testConfig) Backend() string    { return c.backend }
func (c testConfig) SQLitePath() string { return filepath.Join(c.path, "test.db") }
func (c testConfig) Redis() RedisConfig { return RedisConfig{} }

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report absent")

	require.NoError(t, s.Set(ctx, "alcohol_records", `[{"id":"1"}]`))
	got, ok, err := s.Get(ctx, "alcohol_records")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, got)

	require.NoError(t, s.Set(ctx, "alcohol_records", "[]"))
	got, _, err = s.Get(ctx, "alcohol_records")
	require.NoError(t, err)
	assert.Equal(t, "[]", got, "set should replace the value")

	require.NoError(t, s.Remove(ctx, "alcohol_records"))
	_, ok, err = s.Get(ctx, "alcohol_records")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Remove(ctx, "alcohol_records"), "removing a missing key is not an error")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestDiskStore(t *testing.T) {
	s, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestDiskStoreFileLayout(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDisk(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "user_settings", `{"isPremium":false}`))

	b, err := os.ReadFile(filepath.Join(dir, "user_settings.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"isPremium":false}`, string(b))

	assert.Equal(t, "user_settings", s.keyForPath(filepath.Join(dir, "user_settings.json")))
	assert.Empty(t, s.keyForPath(filepath.Join(dir, ".tmp", "x.json")))
	assert.Empty(t, s.keyForPath(filepath.Join(dir, "notes.txt")))
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "nomilog:")
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)

	require.NoError(t, s.Set(context.Background(), "user_settings", "{}"))
	got, err := mr.Get("nomilog:user_settings")
	require.NoError(t, err)
	assert.Equal(t, "{}", got, "keys are prefixed")
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := OpenRedis(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)

	_, err = OpenRedis(context.Background(), RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err, "ping failure is reported")
}

func TestLoadBackends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Load(ctx, testConfig{path: dir, backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Load(ctx, testConfig{path: dir})
	require.NoError(t, err)
	assert.IsType(t, &Disk{}, s, "empty backend defaults to disk")

	s, err = Load(ctx, testConfig{path: dir, backend: " SQLite "})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Load(ctx, testConfig{path: dir, backend: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NOMILOG_CONFIG_PATH", dir)
	t.Chdir(t.TempDir())

	data := "path: " + filepath.Join(dir, "data") + "\nbackend: sqlite\nlog:\n  level: debug\nads:\n  frequency: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nomilog.yaml"), []byte(data), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.BasePath())
	assert.Equal(t, BackendSQLite, cfg.Backend())
	assert.Equal(t, filepath.Join(dir, "data", "nomilog.db"), cfg.SQLitePath())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.AdFrequency)
	assert.Equal(t, "nomilog:", cfg.Redis().Prefix)
	assert.Equal(t, filepath.Join(dir, ".nomilog.yaml"), cfg.File)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NOMILOG_CONFIG_PATH", t.TempDir())
	t.Setenv("NOMILOG_BACKEND", "redis")
	t.Setenv("NOMILOG_REDIS_DB", "2")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Backend())
	assert.Equal(t, 2, cfg.Redis().DB)
	assert.Equal(t, filepath.Join(home, ".nomilog"), cfg.BasePath())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3, cfg.AdFrequency)
	assert.Empty(t, cfg.File)
}
