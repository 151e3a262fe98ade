package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LISTKEEPER"

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	UI      UIConfig
	Log     LogConfig
}

// StorageConfig selects where list state is persisted.
type StorageConfig struct {
	Backend string // json | sqlite | memory
	Dir     string
	Key     string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string // classic | neon | mono
	Mouse bool
}

// LogConfig controls the zerolog output. File is appended to; the TUI owns
// the terminal so logs never go to stdout.
type LogConfig struct {
	Level string
	File  string
}

// Path returns the config file location: $LISTKEEPER_CONFIG or
// ~/.config/listkeeper/config.toml.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(envPrefix + "_CONFIG")); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".config", "listkeeper", "config.toml")
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// Load reads configuration from file and env. Env var overrides use prefix LISTKEEPER_.
// path overrides Path() when non-empty. A missing file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(homeDir(), ".local", "share", "listkeeper")
	v.SetDefault("storage.backend", "json")
	v.SetDefault("storage.dir", dataDir)
	v.SetDefault("storage.key", "vanilla-list-app-state-v1")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if strings.TrimSpace(c.Log.File) == "" {
		c.Log.File = filepath.Join(c.Storage.Dir, "listkeeper.log")
	}
	return c, nil
}

// Save writes cfg to path (or Path()), creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.dir", cfg.Storage.Dir)
	v.Set("storage.key", cfg.Storage.Key)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
