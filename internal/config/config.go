package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig holds the rules and layout of a match
type GameConfig struct {
	Board BoardConfig `mapstructure:"board"`
	Teams TeamsConfig `mapstructure:"teams"`
	Rules RulesConfig `mapstructure:"rules"`
	Input InputConfig `mapstructure:"input"`
}

// BoardConfig holds board dimensions and the starting layout
type BoardConfig struct {
	Rows         int `mapstructure:"rows"`
	Columns      int `mapstructure:"columns"`
	StartingRows int `mapstructure:"starting_rows"`
}

// TeamsConfig holds per-team settings
type TeamsConfig struct {
	Dark  TeamConfig `mapstructure:"dark"`
	Light TeamConfig `mapstructure:"light"`
}

// TeamConfig holds the row sense a team's units move toward
type TeamConfig struct {
	Forward int `mapstructure:"forward"`
}

// RulesConfig holds end-of-game and kinging policy
type RulesConfig struct {
	DrawTurns          int  `mapstructure:"draw_turns"`
	EndTurnOnPromotion bool `mapstructure:"end_turn_on_promotion"`
}

// InputConfig holds input pacing
type InputConfig struct {
	SelectionCooldown time.Duration `mapstructure:"selection_cooldown"`
}

// LoggingConfig holds logger settings for the binaries
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance. It is replaced, never written through, so a
	// copy handed out by Get stays stable across reloads.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

func current() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func store(c *Config) {
	mu.Lock()
	cfg = c
	mu.Unlock()
}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.board.rows", 8)
	v.SetDefault("game.board.columns", 8)
	v.SetDefault("game.board.starting_rows", 3)

	// Dark starts on row 0 and moves up, light starts on the last row
	v.SetDefault("game.teams.dark.forward", 1)
	v.SetDefault("game.teams.light.forward", -1)

	v.SetDefault("game.rules.draw_turns", 40)
	v.SetDefault("game.rules.end_turn_on_promotion", true)

	v.SetDefault("game.input.selection_cooldown", 500*time.Millisecond)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Default returns a fresh config populated with defaults only. It does not
// touch the global instance.
func Default() *Config {
	dv := viper.New()
	setViperDefaults(dv)
	c := &Config{}
	if err := dv.Unmarshal(c); err != nil {
		panic("failed to decode config defaults: " + err.Error())
	}
	return c
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/checkers")
	}

	v.SetEnvPrefix("CHK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config in the default locations, use defaults
		case configPath != "" && errors.Is(err, os.ErrNotExist):
			// Specific file requested but not found, use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	store(loaded)
	return nil
}

// Get returns a copy of the global config. Later reloads do not change it.
func Get() *Config {
	if current() == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	c := *current()
	return &c
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the directory of the
// loaded config file (or the working directory) over the current config.
// A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if used := v.ConfigFileUsed(); used != "" {
		envFile = filepath.Join(filepath.Dir(used), envFile)
	}
	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	used := v.ConfigFileUsed()
	v.SetConfigFile(envFile)
	err := v.MergeInConfig()
	if used != "" {
		// Keep watching the base file
		v.SetConfigFile(used)
	}
	if err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return fmt.Errorf("merged config validation failed: %w", err)
	}
	store(merged)
	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	v.Set(key, value)
	updated := &Config{}
	if err := v.Unmarshal(updated); err != nil {
		return err
	}
	store(updated)
	return nil
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// GetDuration gets a duration value from config
func GetDuration(key string) time.Duration {
	return v.GetDuration(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. A reloaded config
// that fails validation is logged and discarded.
func WatchConfig(logger zerolog.Logger, onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		reloaded := &Config{}
		if err := v.Unmarshal(reloaded); err != nil {
			logger.Error().Err(err).Str("file", e.Name).Msg("Failed to decode reloaded config")
			return
		}
		if err := Validate(reloaded); err != nil {
			logger.Warn().Err(err).Str("file", e.Name).Msg("Ignoring invalid config change")
			return
		}
		store(reloaded)
		logger.Info().Str("file", e.Name).Msg("Config reloaded")
		if onChange != nil {
			// The callback owns its copy
			c := *reloaded
			onChange(&c)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	board := c.Game.Board
	if board.Rows <= 0 || board.Columns <= 0 {
		return fmt.Errorf("game.board dimensions must be positive, got %dx%d", board.Rows, board.Columns)
	}
	if board.StartingRows < 0 {
		return fmt.Errorf("game.board.starting_rows must be non-negative")
	}
	if 2*board.StartingRows > board.Rows {
		return fmt.Errorf("game.board.starting_rows %d overlap on a board with %d rows", board.StartingRows, board.Rows)
	}

	dark, light := c.Game.Teams.Dark.Forward, c.Game.Teams.Light.Forward
	if !isSense(dark) {
		return fmt.Errorf("game.teams.dark.forward must be 1 or -1, got %d", dark)
	}
	if !isSense(light) {
		return fmt.Errorf("game.teams.light.forward must be 1 or -1, got %d", light)
	}
	if dark == light {
		return fmt.Errorf("game.teams forward senses must differ")
	}

	if c.Game.Rules.DrawTurns <= 0 {
		return fmt.Errorf("game.rules.draw_turns must be positive")
	}
	if c.Game.Input.SelectionCooldown < 0 {
		return fmt.Errorf("game.input.selection_cooldown must be non-negative")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}

func isSense(n int) bool {
	return n == 1 || n == -1
}
