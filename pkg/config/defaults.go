package config

import (
	"os"
	"strings"
)

// Default injection parameters.
const (
	DefaultConfKey      = "dfs.datanode.data.dir"
	DefaultStartBlockID = 1_000_000
	DefaultGenStamp     = 1_000
)

// GetDefaultConfig returns a fully defaulted configuration.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unspecified configuration
// fields. Zero values are replaced; explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyHadoopDefaults(&cfg.Hadoop)
	applyInjectDefaults(&cfg.Inject)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyHadoopDefaults sets cluster lookup defaults.
func applyHadoopDefaults(cfg *HadoopConfig) {
	if cfg.Home == "" {
		cfg.Home = os.Getenv("HADOOP_HOME")
	}
	if cfg.ConfKey == "" {
		cfg.ConfKey = DefaultConfKey
	}
}

// applyInjectDefaults sets injection defaults.
func applyInjectDefaults(cfg *InjectConfig) {
	if cfg.StartBlockID == 0 {
		cfg.StartBlockID = DefaultStartBlockID
	}
	if cfg.GenStamp == 0 {
		cfg.GenStamp = DefaultGenStamp
	}
}
