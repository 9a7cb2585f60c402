package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"login_url":  "http://www.example:9000/login",
		"user_agent": "agent/2",
		"timeout":    "1500ms",
		"store_path": "x.db",
		"log_format": "json",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"timeout": 3000000000,
	})

	t.Run("loads all fields", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", full})

		assert.Equal(t, "http://www.example:9000/login", cfg.LoginURL)
		assert.Equal(t, "agent/2", cfg.UserAgent)
		assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
		assert.Equal(t, "x.db", cfg.StorePath)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("absent fields keep current values", func(t *testing.T) {
		cfg := &Config{LoginURL: "keep", LogFormat: "text"}
		parseJson(cfg, []string{"-c", partial})

		assert.Equal(t, "keep", cfg.LoginURL)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{LoginURL: "defaults", Timeout: 42 * time.Second}
		parseJson(cfg, []string{"-t", "1"})

		assert.Equal(t, "defaults", cfg.LoginURL)
		assert.Equal(t, 42*time.Second, cfg.Timeout)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-config", bad}) })
	})
}
