package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFilesAreSkipped(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "university.db", cfg.Database)
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	dir := t.TempDir()
	path := writeFile(t, dir, "registrar.yaml", "database: /tmp/records.db\nlog:\n  level: debug\n  format: json\n")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/records.db", cfg.Database)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EmptyYAML(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	path := writeFile(t, t.TempDir(), "registrar.yaml", "")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "university.db", cfg.Database)
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeFile(t, t.TempDir(), "registrar.yaml", "databse: typo.db\n")

	_, err := Load(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "registrar.yaml", "database: file.db\n")
	t.Setenv(EnvDatabase, "env.db")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvLogFormat, "")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Database)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "REGISTRAR_DB=dotenv.db\nREGISTRAR_LOG_FORMAT=json\n")
	// Registered with t.Setenv so the values are restored after the test,
	// then cleared so godotenv is allowed to set them.
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvDatabase)
	os.Unsetenv(EnvLogFormat)

	cfg, err := Load("", envPath)
	require.NoError(t, err)
	assert.Equal(t, "dotenv.db", cfg.Database)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Database = " "
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Log.Level = "verbose"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Log.Format = "xml"
	assert.Error(t, bad.Validate())
}
