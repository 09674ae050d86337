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
	path := filepath.Join(t.TempDir(), "primer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
tour:
  name: Maria
  age: 16
  fruits: [Kiwi]
database:
  driver: sqlite
  password: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Maria", cfg.Tour.Name)
	assert.Equal(t, 16, cfg.Tour.Age)
	assert.Equal(t, []string{"Kiwi"}, cfg.Tour.Fruits)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "secret", cfg.Database.Password)

	// Untouched fields keep their defaults.
	assert.Equal(t, 5.9, cfg.Tour.Height)
	assert.Equal(t, "A", cfg.Tour.Grade)
	assert.Equal(t, "tutorial", cfg.Database.Name)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		substr  string
	}{
		{"unknown field", "tour:\n  nickname: J\n", "nickname"},
		{"bad yaml", "tour: [\n", "parse config"},
		{"bad driver", "database:\n  driver: mysql\n", "invalid config"},
		{"bad grade", "tour:\n  grade: Z\n", "invalid config"},
		{"negative age", "tour:\n  age: -1\n", "invalid config"},
		{"empty name", "tour:\n  name: \"\"\n", "invalid config"},
		{"bad database name", "database:\n  name: ../etc\n", "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.substr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDatabaseDir(t *testing.T) {
	cfg := Default()
	cfg.WorkDir = "/work"
	assert.Equal(t, "/work", cfg.DatabaseDir())

	cfg.Database.Dir = "/db"
	assert.Equal(t, "/db", cfg.DatabaseDir())
}
