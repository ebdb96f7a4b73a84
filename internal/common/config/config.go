// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Language  LanguageConfig  `mapstructure:"language"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Session   SessionConfig   `mapstructure:"session"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Translate TranslateConfig `mapstructure:"translate"`
	Wellness  WellnessConfig  `mapstructure:"wellness"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int    `mapstructure:"write_timeout"` // milliseconds
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LanguageConfig holds the translation-bridge settings. Every domain handler
// operates in the pivot language; user-facing languages are bridged at the
// router boundary.
type LanguageConfig struct {
	Pivot     string   `mapstructure:"pivot"`
	Supported []string `mapstructure:"supported"`
}

// PathsConfig points at the static data files loaded once at startup.
type PathsConfig struct {
	Intents   string `mapstructure:"intents"`
	Knowledge string `mapstructure:"knowledge"`
}

// SessionConfig holds settings for the optional wellness session store.
type SessionConfig struct {
	Backend string `mapstructure:"backend"` // "memory" or "redis"
	TTL     int    `mapstructure:"ttl"`     // seconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// TranslateConfig selects the translation backend. The simulator is the
// default; "remote" calls a LibreTranslate-compatible endpoint.
type TranslateConfig struct {
	Backend  string `mapstructure:"backend"` // "simulator" or "remote"
	Endpoint string `mapstructure:"endpoint"`
	Timeout  int    `mapstructure:"timeout"` // milliseconds
}

// WellnessConfig holds tunables for the wellness dialogue.
type WellnessConfig struct {
	FollowUpProbability float64 `mapstructure:"follow_up_probability"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
