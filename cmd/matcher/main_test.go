package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJSONObject(t *testing.T) {
	path := writeTempFile(t, "resume.json", `{"name": "Ada", "skills": {"technical": ["Go"]}}`)

	obj, err := readJSONObject(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", obj["name"])
}

func TestReadJSONObject_NotAnObject(t *testing.T) {
	path := writeTempFile(t, "resume.json", `["not", "an", "object"]`)

	_, err := readJSONObject(path)
	assert.Error(t, err)
}

func TestReadJSONObject_MissingFile(t *testing.T) {
	_, err := readJSONObject(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestLoadMergedConfig_Defaults(t *testing.T) {
	cfg, err := loadMergedConfig(serveCommand, "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadMergedConfig_FileAndEnv(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"port": 9000, "rate_limit_per_minute": 30}`)
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := loadMergedConfig(serveCommand, path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	assert.Equal(t, "from-flag", resolveAPIKey("from-flag"))
	assert.Equal(t, "from-env", resolveAPIKey(""))
}
