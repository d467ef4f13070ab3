package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	Cache       CacheConfig
	Search      SearchConfig
	Connections ConnectionsConfig
	Reminders   RemindersConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig governs the Redis-backed listing and dashboard caches.
type CacheConfig struct {
	Enabled      bool
	MentorTTL    time.Duration
	DashboardTTL time.Duration
}

// SearchConfig tunes typeahead search sessions.
type SearchConfig struct {
	DebounceWindow time.Duration
	SessionTTL     time.Duration
}

// ConnectionsConfig sizes the connection request dispatcher.
type ConnectionsConfig struct {
	Workers int
	Retries int
}

// RemindersConfig toggles the learning reminder cron job.
type RemindersConfig struct {
	Enabled  bool
	Schedule string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		Enabled:      v.GetBool("ENABLE_CACHE"),
		MentorTTL:    parseDuration(v.GetString("MENTOR_CACHE_TTL"), 10*time.Minute),
		DashboardTTL: parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Search = SearchConfig{
		DebounceWindow: parseDuration(v.GetString("SEARCH_DEBOUNCE_WINDOW"), 300*time.Millisecond),
		SessionTTL:     parseDuration(v.GetString("SEARCH_SESSION_TTL"), 15*time.Minute),
	}

	cfg.Connections = ConnectionsConfig{
		Workers: v.GetInt("CONNECTIONS_WORKERS"),
		Retries: v.GetInt("CONNECTIONS_RETRIES"),
	}

	cfg.Reminders = RemindersConfig{
		Enabled:  v.GetBool("ENABLE_REMINDERS"),
		Schedule: v.GetString("REMINDER_SCHEDULE"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("MENTOR_CACHE_TTL", "10m")
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")

	v.SetDefault("SEARCH_DEBOUNCE_WINDOW", "300ms")
	v.SetDefault("SEARCH_SESSION_TTL", "15m")

	v.SetDefault("CONNECTIONS_WORKERS", 1)
	v.SetDefault("CONNECTIONS_RETRIES", 3)

	v.SetDefault("ENABLE_REMINDERS", false)
	v.SetDefault("REMINDER_SCHEDULE", "@daily")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
