package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	return dir
}

const baseYAML = `
server:
  port: "8080"
  mode: "debug"
database:
  host: "127.0.0.1"
  port: 3306
  user: "cyberwalk"
  password: "x"
  dbname: "cyberwalk"
jwt:
  secret: "short"
  expire_hours: 72
storage:
  type: "minio"
game:
  seed_content: true
`

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, baseYAML)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "cyberwalk", cfg.Database.DBName)
	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)
	assert.True(t, cfg.Game.SeedContent)
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: "release"
jwt:
  secret: "short"
  expire_hours: 1
storage:
  type: "minio"
`)

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
