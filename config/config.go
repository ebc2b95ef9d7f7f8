package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/inference-sim/cpusched/sim"
)

// ServerConfig holds the HTTP server settings and the scheduler defaults
// applied to requests that omit them.
type ServerConfig struct {
	Port          int
	ContextSwitch int64
	Quantum       int64
	ThroughputAt  *int64 // nil counts throughput at each run's makespan
	MaxSegments   int64  // timeline length cap per run; 0 = none
}

// Defaults used when neither the config file nor the environment sets a key.
const (
	DefaultPort          = 9095
	DefaultContextSwitch = 1
	DefaultQuantum       = 8
	DefaultMaxSegments   = 1_000_000
)

// LoadServerConfig reads path (YAML) when non-empty and overlays CPUSCHED_*
// environment variables, e.g. CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func LoadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CPUSCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("scheduler.context_switch", DefaultContextSwitch)
	v.SetDefault("scheduler.round_robin.time_quantum", DefaultQuantum)
	v.SetDefault("scheduler.max_segments", DefaultMaxSegments)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading server config: %w", err)
		}
	}

	cfg := &ServerConfig{
		Port:          v.GetInt("port"),
		ContextSwitch: v.GetInt64("scheduler.context_switch"),
		Quantum:       v.GetInt64("scheduler.round_robin.time_quantum"),
		MaxSegments:   v.GetInt64("scheduler.max_segments"),
	}
	if v.IsSet("scheduler.throughput_at") {
		t := v.GetInt64("scheduler.throughput_at")
		cfg.ThroughputAt = &t
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the server settings.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	if c.ContextSwitch < 0 {
		return fmt.Errorf("scheduler.context_switch: %w, got %d", sim.ErrInvalidContextSwitch, c.ContextSwitch)
	}
	if c.Quantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum: %w, got %d", sim.ErrInvalidQuantum, c.Quantum)
	}
	if c.ThroughputAt != nil && *c.ThroughputAt < 0 {
		return fmt.Errorf("scheduler.throughput_at must be non-negative, got %d", *c.ThroughputAt)
	}
	if c.MaxSegments < 0 {
		return fmt.Errorf("scheduler.max_segments must be non-negative, got %d", c.MaxSegments)
	}
	return nil
}
