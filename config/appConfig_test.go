package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	raw := `
driver: postgres
server:
  port: 9090
  templates-dir: tpl
  rate-limit: 10
  rate-burst: 20
postgres:
  host: db.internal
  port: "5433"
  user: shop
  password: secret
  dbname: shopdb
shop:
  main-feed-size: 5
  currency: EUR
  contact-email: help@shop.test
`
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "tpl", cfg.Server.TemplatesDir)
	assert.Equal(t, 5, cfg.Shop.MainFeedSize)
	assert.Equal(t, "EUR", cfg.Shop.Currency)
	assert.Equal(t,
		"host=db.internal port=5433 user=shop password=secret dbname=shopdb sslmode=disable",
		cfg.Postgres.GetConnectionString())
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("driver: sqlite\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Shop.MainFeedSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
