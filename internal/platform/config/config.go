package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported store drivers.
const (
	StoreDriverPgsql  = "pgsql"
	StoreDriverMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Storage
	StoreDriver      string
	DatabaseURL      string
	DBMaxConns       int32
	DBConnectTimeout time.Duration
	RunMigrations    bool

	// Balance mutations
	MutationTimeout time.Duration

	// Events (disabled when RedisAddr is empty)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EventsStream  string

	// HTTP edge
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", "")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_TIMEOUT", "30s")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MUTATION_TIMEOUT", "5s")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("EVENTS_STREAM", "account.events")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		DatabaseURL:   v.GetString("PGSQL_URL"),
		DBMaxConns:    v.GetInt32("DB_MAX_CONNS"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		EventsStream:  v.GetString("EVENTS_STREAM"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER")))
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StoreDriverPgsql
		if cfg.DatabaseURL == "" {
			cfg.StoreDriver = StoreDriverMemory
			log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory account store.")
		}
	}
	switch cfg.StoreDriver {
	case StoreDriverPgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("STORE_DRIVER=%s requires PGSQL_URL", StoreDriverPgsql)
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	var err error
	cfg.DBConnectTimeout, err = parseDuration(v, "DB_CONNECT_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.MutationTimeout, err = parseDuration(v, "MUTATION_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 10
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		log.Printf("Warning: %s not set. Defaulting to %s.\n", key, fallback)
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
