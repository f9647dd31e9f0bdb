package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/oklabby/internal/logging"
	"github.com/ironsheep/oklabby/internal/oklab"
)

// For mocking in tests
var (
	osUserHomeDir = os.UserHomeDir
	osLookupEnv   = os.LookupEnv
)

const (
	userConfigDir  = ".config/oklabby"
	configFileName = "config.yaml"
)

// fileConfig mirrors Config with pointer fields so an absent key can be told
// apart from a zero value when merging.
type fileConfig struct {
	Steps    *int    `yaml:"steps"`
	Output   *string `yaml:"output"`
	Color    *string `yaml:"color"`
	ShowLab  *bool   `yaml:"show_lab"`
	LogLevel *string `yaml:"log_level"`
}

// Load builds the configuration from defaults, a config file and the
// environment, then validates it.
//
// When path is empty the user file is used if it exists; a missing user file
// is not an error. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		userPath, err := getUserConfigPath()
		if err != nil {
			logging.Warn("Config", "Could not determine user config path: %v", err)
		} else if _, err := os.Stat(userPath); err == nil {
			path = userPath
		}
	}

	if path != "" {
		fc, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		cfg = merge(cfg, fc)
		logging.Debug("Config", "Loaded config file %s", path)
	}

	cfg, err := applyEnv(cfg)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	if c.Steps < 2 {
		return fmt.Errorf("config steps: %w: need at least 2, got %d", oklab.ErrInvalidStepCount, c.Steps)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("config output: unknown format %q (want text or json)", c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config color: unknown mode %q (want auto, always or never)", c.Color)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	return nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// loadConfigFromFile loads a fileConfig from a YAML file.
func loadConfigFromFile(filePath string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("invalid YAML: %w", err)
	}
	return fc, nil
}

func merge(base Config, fc fileConfig) Config {
	if fc.Steps != nil {
		base.Steps = *fc.Steps
	}
	if fc.Output != nil {
		base.Output = *fc.Output
	}
	if fc.Color != nil {
		base.Color = *fc.Color
	}
	if fc.ShowLab != nil {
		base.ShowLab = *fc.ShowLab
	}
	if fc.LogLevel != nil {
		base.LogLevel = *fc.LogLevel
	}
	return base
}

func applyEnv(cfg Config) (Config, error) {
	if v, ok := osLookupEnv("OKLABBY_STEPS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("OKLABBY_STEPS: %w", err)
		}
		cfg.Steps = n
	}
	if v, ok := osLookupEnv("OKLABBY_OUTPUT"); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := osLookupEnv("OKLABBY_COLOR"); ok && v != "" {
		cfg.Color = v
	}
	if v, ok := osLookupEnv("OKLABBY_SHOW_LAB"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("OKLABBY_SHOW_LAB: %w", err)
		}
		cfg.ShowLab = b
	}
	if v, ok := osLookupEnv("OKLABBY_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := osLookupEnv("NO_COLOR"); ok && v != "" {
		cfg.Color = ColorNever
	}
	return cfg, nil
}
