package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
default_exercise: advanced
min_submit_length: 12
logging:
  level: debug
  file: /tmp/promptlab.log
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "advanced", cfg.DefaultExercise)
	assert.Equal(t, 12, cfg.MinSubmitLength)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/promptlab.log", cfg.Logging.File)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	p := writeConfig(t, "default_exercise: intermediate\n")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "intermediate", cfg.DefaultExercise)
	assert.Equal(t, DefaultMinSubmitLength, cfg.MinSubmitLength)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EmptyDefaultExerciseUsesBuiltin(t *testing.T) {
	p := writeConfig(t, "default_exercise: \"\"\nmin_submit_length: 8\n")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Default().DefaultExercise, cfg.DefaultExercise)
	assert.Equal(t, 8, cfg.MinSubmitLength)
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, "default_exercise: [unclosed\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_InvalidValues(t *testing.T) {
	p := writeConfig(t, `
default_exercise: expert
min_submit_length: -1
logging:
  level: loud
`)
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `default_exercise "expert"`)
	assert.Contains(t, err.Error(), "min_submit_length must be >= 0")
	assert.Contains(t, err.Error(), `logging.level "loud"`)
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/custom/promptlab.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/promptlab.yaml", p)
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "promptlab", "config.yaml"), p)
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "promptlab.log")
	require.NoError(t, EnsureDir(p))
	info, err := os.Stat(filepath.Dir(p))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
