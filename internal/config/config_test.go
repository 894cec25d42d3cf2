package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltask/internal/config"
)

func TestNew_Default(t *testing.T) {
	cfg, err := config.New(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTasksFile, cfg.TasksFile)
}

func TestNew_FlagOverride(t *testing.T) {
	cfg, err := config.New(t.TempDir(), "/tmp/mine.json")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mine.json", cfg.TasksFile)
}

func TestNew_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "tasks_file = \"/var/tasks/work.json\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0o644))

	cfg, err := config.New(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "/var/tasks/work.json", cfg.TasksFile)
}

func TestNew_FlagBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "tasks_file = \"/var/tasks/work.json\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0o644))

	cfg, err := config.New(dir, "flag.json")
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.TasksFile)
}

func TestNew_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("tasks_file = [broken"), 0o644))

	_, err := config.New(dir, "")
	assert.Error(t, err)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
	assert.Equal(t, filepath.Join("/custom/xdg", config.AppName), config.DefaultConfigDir())
}

func TestConfigPath(t *testing.T) {
	cfg, err := config.New("/etc/ltask", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/etc/ltask", config.ConfigFile), cfg.ConfigPath())
}
