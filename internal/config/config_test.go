package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: 127.0.0.1:8080
  max_connections: 4
  read_timeout: 2s
static:
  public_path: /srv/public
log:
  level: debug
  dev: true
`), 0o644))

	conf, loader, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, loader.File())
	assert.Equal(t, "127.0.0.1:8080", conf.Server.Addr)
	assert.Equal(t, int64(4), conf.Server.MaxConnections)
	assert.Equal(t, 2*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, conf.Server.WriteTimeout)
	assert.Equal(t, 1<<20, conf.Server.MaxRequestBytes)
	assert.Equal(t, "/srv/public", conf.Static.PublicPath)
	assert.Equal(t, "data", conf.Static.DataPath)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.True(t, conf.Log.Dev)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PUBLIC_PATH", "/tmp/pub")
	t.Setenv("DATA_PATH", "/tmp/data")

	conf, loader, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", loader.File())
	assert.Equal(t, "localhost:3000", conf.Server.Addr)
	assert.Equal(t, int64(128), conf.Server.MaxConnections)
	assert.Equal(t, "/tmp/pub", conf.Static.PublicPath)
	assert.Equal(t, "/tmp/data", conf.Static.DataPath)
	assert.Equal(t, "info", conf.Log.Level)
}

func TestFindConfigUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "configs"), 0o755))
	want := filepath.Join(root, defaultConfigRelPath)
	require.NoError(t, os.WriteFile(want, []byte("server:\n  addr: :9\n"), 0o644))

	assert.Equal(t, want, findConfigUpward(nested))
}
