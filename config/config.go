package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ringlog/ringlog/core"
	"github.com/ringlog/ringlog/sink"
	"github.com/ringlog/ringlog/store"
)

// Config describes a store as loaded from a YAML file:
//
//	capacity: 500
//	verbosity: warning
//	log_file: /var/log/app.log
//	log_to_file: true
//	color: false
type Config struct {
	// Capacity bounds the in-memory history (default 500)
	Capacity int `yaml:"capacity"`
	// Verbosity is the console threshold: debug, message, warning,
	// error or none (default message)
	Verbosity string `yaml:"verbosity"`
	// LogFile is the append-only sink path; empty disables the sink
	LogFile string `yaml:"log_file"`
	// LogToFile enables the file sink at startup
	LogToFile bool `yaml:"log_to_file"`
	// Color enables ANSI colorization of console tags
	Color bool `yaml:"color"`
}

// Default returns the configuration matching store.NewBuilder's
// defaults.
func Default() Config {
	return Config{
		Capacity:  store.DefaultCapacity,
		Verbosity: core.Message.String(),
		Color:     true,
	}
}

// Load reads a YAML configuration file and applies environment
// overrides (RINGLOG_VERBOSITY, RINGLOG_LOG_FILE). Fields absent
// from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv applies environment variable overrides
func (c *Config) applyEnv() {
	if v := os.Getenv("RINGLOG_VERBOSITY"); v != "" {
		c.Verbosity = v
	}
	if v := os.Getenv("RINGLOG_LOG_FILE"); v != "" {
		c.LogFile = v
		c.LogToFile = true
	}
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.LogToFile && c.LogFile == "" {
		return fmt.Errorf("log_to_file requires log_file to be set")
	}
	return nil
}

// NewStore builds a store from the configuration
func (c *Config) NewStore() *store.Store {
	b := store.NewBuilder().
		WithCapacity(c.Capacity).
		WithVerbosity(core.ParsePriority(c.Verbosity)).
		WithConsole(sink.NewConsoleSink(sink.ConsoleConfig{Colorize: c.Color}))
	if c.LogFile != "" {
		b = b.WithFile(c.LogFile).WithLogToFile(c.LogToFile)
	}
	return b.Build()
}
