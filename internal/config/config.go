// Package config resolves the store file path and the XDG configuration
// directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// ConfigFile is the optional configuration filename inside the
	// config directory.
	ConfigFile = "config.toml"

	// DefaultTasksFile is the store file used when nothing overrides it.
	DefaultTasksFile = "tasks.json"
)

// Config holds resolved configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// TasksFile is the resolved store file path.
	TasksFile string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors the keys accepted in config.toml.
type fileConfig struct {
	TasksFile string `toml:"tasks_file"`
}

// New resolves configuration. The tasksFile argument (the --tasks-file
// flag) wins over a tasks_file entry in config.toml, which wins over the
// default tasks.json in the working directory. If configDir is empty,
// uses XDG_CONFIG_HOME/ltask or $HOME/.config/ltask.
func New(configDir, tasksFile string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, TasksFile: tasksFile}
	if cfg.TasksFile == "" {
		fc, err := readFileConfig(filepath.Join(dir, ConfigFile))
		if err != nil {
			return nil, err
		}
		cfg.TasksFile = fc.TasksFile
	}
	if cfg.TasksFile == "" {
		cfg.TasksFile = DefaultTasksFile
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the optional config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// readFileConfig reads config.toml. A missing file yields zero values,
// not an error; a malformed file is reported.
func readFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	return fc, nil
}
