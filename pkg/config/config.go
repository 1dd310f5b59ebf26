// Package config loads and validates the blockgen configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (applied by the commands, highest priority)
//  2. Environment variables (BLOCKGEN_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
//
// The config file is optional: blockgen is usually driven entirely by
// flags, and the file only provides site defaults (logging, hadoop home,
// injection defaults).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the blockgen configuration.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Hadoop locates the target cluster installation
	Hadoop HadoopConfig `mapstructure:"hadoop" yaml:"hadoop"`

	// Inject holds defaults for the inject command
	Inject InjectConfig `mapstructure:"inject" yaml:"inject"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (DEBUG, INFO, WARN, ERROR)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format selects text or json output
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// HadoopConfig locates the target cluster.
type HadoopConfig struct {
	// Home is the cluster installation root. Defaults to $HADOOP_HOME.
	Home string `mapstructure:"home" yaml:"home"`

	// ConfKey is the configuration key holding the datanode storage
	// directory list.
	ConfKey string `mapstructure:"conf_key" validate:"required" yaml:"conf_key"`
}

// InjectConfig holds defaults for synthetic block injection.
type InjectConfig struct {
	// StartBlockID is the first synthetic block ID when --startblockid is
	// not given.
	StartBlockID int64 `mapstructure:"start_block_id" validate:"required,gt=0" yaml:"start_block_id"`

	// GenStamp is the generation stamp embedded in metadata filenames when
	// --genstamp is not given.
	GenStamp int64 `mapstructure:"gen_stamp" validate:"required,gt=0" yaml:"gen_stamp"`
}

// Load loads configuration from file, environment, and defaults.
// An empty configPath uses the default location; a missing file is not an
// error and yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("BLOCKGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		// No config file: env and defaults only.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// GetDefaultConfigPath returns the default config file location.
func GetDefaultConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("/etc", "blockgen", "config.yaml")
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "blockgen", "config.yaml")
}
