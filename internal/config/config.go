// Package config loads dealerdash settings from defaults, a YAML file and
// DEALERDASH_ environment variables, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DEALERDASH_"

// Transports accepted by server.transport.
const (
	TransportChi   = "chi"
	TransportFiber = "fiber"
)

// Config is the resolved application configuration.
type Config struct {
	Model   string        `koanf:"model"`
	Locale  string        `koanf:"locale"`
	Server  ServerConfig  `koanf:"server"`
	Session SessionConfig `koanf:"session"`
	Charts  ChartsConfig  `koanf:"charts"`
	Log     LogConfig     `koanf:"log"`
}

// ServerConfig controls the HTTP transports.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	Transport       string        `koanf:"transport"`
	BasePath        string        `koanf:"base_path"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SessionConfig controls the viewer session cookie.
type SessionConfig struct {
	Name   string `koanf:"name"`
	Secret string `koanf:"secret"`
}

// ChartsConfig controls chart rendering.
type ChartsConfig struct {
	Theme    string        `koanf:"theme"`
	CDN      string        `koanf:"cdn"`
	Height   string        `koanf:"height"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// LogConfig controls the slog handler and optional rotating file.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

func defaults() map[string]any {
	return map[string]any{
		"model":                   "",
		"locale":                  "en",
		"server.addr":             ":8080",
		"server.transport":        TransportChi,
		"server.base_path":        "/dealer",
		"server.shutdown_timeout": "10s",
		"session.name":            "dealerdash",
		"session.secret":          "",
		"charts.theme":            "westeros",
		"charts.cdn":              "",
		"charts.height":           "360px",
		"charts.cache_ttl":        "5m",
		"log.level":               "info",
		"log.format":              "text",
		"log.file":                "",
		"log.max_size_mb":         10,
		"log.max_backups":         3,
		"log.max_age_days":        28,
		"log.compress":            false,
	}
}

// Load reads defaults, then path (when non-empty), then the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	// DEALERDASH_SERVER_BASE_PATH -> server.base_path
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps an environment variable onto a section.key path. Only the
// first underscore separates the section.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	switch section {
	case "server", "session", "charts", "log":
		return section + "." + rest
	}
	return key
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case TransportChi, TransportFiber:
	default:
		return fmt.Errorf("config: unknown server.transport %q (want chi or fiber)", c.Server.Transport)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log.format %q (want text or json)", c.Log.Format)
	}
	if c.Charts.CacheTTL < 0 {
		return fmt.Errorf("config: charts.cache_ttl must not be negative")
	}
	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", name)
	}
	return level, nil
}
