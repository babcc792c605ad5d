package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
owner: rak
database:
  user: league
  password: secret
  host: db.internal
  port: 6543
  database: competitions
  insecure: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rak", cfg.Owner)
	assert.Equal(t, Database{
		User:     "league",
		Password: "secret",
		Host:     "db.internal",
		Port:     6543,
		Name:     "competitions",
		Insecure: true,
	}, cfg.Database)
	assert.Equal(t, "db.internal:6543", cfg.Database.Addr())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  host: from-file
  port: 1111
`)

	t.Setenv("LEAGUE_DB_HOST", "from-env")
	t.Setenv("LEAGUE_DB_PORT", "2222")
	t.Setenv("LEAGUE_DB_INSECURE", "true")
	t.Setenv("LEAGUE_OWNER", "someone")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, 2222, cfg.Database.Port)
	assert.True(t, cfg.Database.Insecure)
	assert.Equal(t, "someone", cfg.Owner)
}

func TestLoad_Defaults(t *testing.T) {
	previous := File
	t.Cleanup(func() { File = previous })
	File = filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "database: [not, a, map]"))
	assert.ErrorContains(t, err, "parse config")

	t.Setenv("LEAGUE_DB_PORT", "five")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "invalid LEAGUE_DB_PORT")
}
