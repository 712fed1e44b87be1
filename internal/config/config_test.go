package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DOCSPLIT_CONFIG", "PORT", "DOCSPLIT_API_KEY", "MAX_UPLOAD_BYTES",
		"FUZZY_THRESHOLD", "DEFAULT_PARAGRAPH_NO", "STATS_WINDOW", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("FUZZY_THRESHOLD", "55.5")
	t.Setenv("DEFAULT_PARAGRAPH_NO", "0")
	t.Setenv("STATS_WINDOW", "10m")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 55.5, cfg.FuzzyThreshold)
	assert.Equal(t, 0, cfg.DefaultParagraphNo)
	assert.Equal(t, 10*time.Minute, cfg.StatsWindow)
	assert.Equal(t, int64(52428800), cfg.MaxUploadBytes)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "docsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\nfuzzy_threshold: 40\nstats_window: 30m\napi_key: secret\n"), 0o644))
	t.Setenv("DOCSPLIT_CONFIG", path)
	t.Setenv("PORT", "7100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.Port)
	assert.Equal(t, 40.0, cfg.FuzzyThreshold)
	assert.Equal(t, 30*time.Minute, cfg.StatsWindow)
	assert.Equal(t, "secret", cfg.APIKey)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCSPLIT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed\n"), 0o644))
	t.Setenv("DOCSPLIT_CONFIG", path)
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.FuzzyThreshold = 120
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxUploadBytes = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogLevel = "debug"
	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", lvl.String())
}
