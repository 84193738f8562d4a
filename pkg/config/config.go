// Package config loads and validates the server's YAML configuration.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config is the fully merged, validated runtime configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Data       DataConfig       `yaml:"data"`
	Security   SecurityConfig   `yaml:"security"`
	Generation GenerationConfig `yaml:"generation"`
	Lorebook   LorebookConfig   `yaml:"lorebook"`
	Horde      HordeConfig      `yaml:"horde"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DataConfig locates the storage root.
type DataConfig struct {
	Root string `yaml:"root"`
}

// SecurityConfig holds the CORS policy.
type SecurityConfig struct {
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig lists the allowed browser origins.
type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// GenerationConfig holds fallback generation knobs used when a preset
// leaves them unset.
type GenerationConfig struct {
	DefaultMaxContextTokens int `yaml:"default_max_context_tokens"`
	DefaultMaxTokens        int `yaml:"default_max_tokens"`
}

// LorebookConfig holds fallback lorebook activation knobs.
type LorebookConfig struct {
	DefaultScanDepth int `yaml:"default_scan_depth"`
}

// HordeConfig holds the queue-polling knobs for the horde provider.
type HordeConfig struct {
	PollInterval Duration `yaml:"poll_interval"`
	Timeout      Duration `yaml:"timeout"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard-library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Addr returns the listener address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// defaults returns the built-in configuration merged under the user
// document.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8787,
		},
		Data: DataConfig{
			Root: "./data",
		},
		Security: SecurityConfig{
			CORS: CORSConfig{Origins: []string{"http://localhost:5173"}},
		},
		Generation: GenerationConfig{
			DefaultMaxContextTokens: 8192,
			DefaultMaxTokens:        512,
		},
		Lorebook: LorebookConfig{
			DefaultScanDepth: 1000,
		},
		Horde: HordeConfig{
			PollInterval: Duration(2 * time.Second),
			Timeout:      Duration(300 * time.Second),
		},
	}
}
