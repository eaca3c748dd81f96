package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Signal  SignalConfig  `yaml:"signal" envconfig:"SIGNAL"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	RecordingsDir string `yaml:"recordings_dir" envconfig:"RECORDINGS_DIR" default:"data/recordings" validate:"required"`
	LogsDir       string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/megprep.log"`
}

// SignalConfig contains acquisition and resampling defaults.
// SamplingRate defaults to the HCP MEG acquisition rate.
type SignalConfig struct {
	SamplingRate     float64 `yaml:"sampling_rate" envconfig:"SAMPLING_RATE" default:"2034.51" validate:"gt=0"`
	DownsampleMethod string  `yaml:"downsample_method" envconfig:"DOWNSAMPLE_METHOD" default:"subsample" validate:"oneof=subsample decimate"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("MEGPREP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// getConfigFilePath returns the config file path, honoring the
// MEGPREP_CONFIG_FILE override.
func getConfigFilePath() string {
	if path := os.Getenv("MEGPREP_CONFIG_FILE"); path != "" {
		return path
	}
	return "megprep.yaml"
}

// mergeConfigs merges file config into env config. envconfig fills every
// field with its default, so zero-value checks cannot tell a default from
// an explicit environment override; a file value therefore wins unless
// its environment variable is actually set.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merged := envConfig

	if fileConfig.Paths.RecordingsDir != "" && !envSet("MEGPREP_PATHS_RECORDINGS_DIR", "RECORDINGS_DIR") {
		merged.Paths.RecordingsDir = fileConfig.Paths.RecordingsDir
	}
	if fileConfig.Paths.LogsDir != "" && !envSet("MEGPREP_PATHS_LOGS_DIR", "LOGS_DIR") {
		merged.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if fileConfig.Logging.Level != "" && !envSet("MEGPREP_LOGGING_LEVEL", "LEVEL") {
		merged.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" && !envSet("MEGPREP_LOGGING_FORMAT", "FORMAT") {
		merged.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" && !envSet("MEGPREP_LOGGING_OUTPUT", "OUTPUT") {
		merged.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" && !envSet("MEGPREP_LOGGING_FILE_PATH", "FILE_PATH") {
		merged.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Signal.SamplingRate != 0 && !envSet("MEGPREP_SIGNAL_SAMPLING_RATE", "SAMPLING_RATE") {
		merged.Signal.SamplingRate = fileConfig.Signal.SamplingRate
	}
	if fileConfig.Signal.DownsampleMethod != "" && !envSet("MEGPREP_SIGNAL_DOWNSAMPLE_METHOD", "DOWNSAMPLE_METHOD") {
		merged.Signal.DownsampleMethod = fileConfig.Signal.DownsampleMethod
	}

	return merged
}

// envSet reports whether any of the keys is present in the environment.
// The key pairs mirror envconfig's lookup: the prefixed name first, then
// the bare tag name it accepts as an alternate.
func envSet(keys ...string) bool {
	for _, k := range keys {
		if _, ok := os.LookupEnv(k); ok {
			return true
		}
	}
	return false
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("field %s failed on %q rule", first.Namespace(), first.Tag())
		}
		return err
	}
	return nil
}

// EnsureDirectories creates the directories the pipeline writes to
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.LogsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

// GetRecordingsDir returns the resolved recordings directory path
func (c *Config) GetRecordingsDir() string {
	if filepath.IsAbs(c.Paths.RecordingsDir) {
		return c.Paths.RecordingsDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return c.Paths.RecordingsDir
	}
	return filepath.Join(wd, c.Paths.RecordingsDir)
}
