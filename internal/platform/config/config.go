package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	JWTSecret      string
	MigrationsPath string

	// Redis backs both the account directory cache and the payment notification queue.
	RedisAddr         string
	AccountCacheTTL   time.Duration
	WorkerConcurrency int

	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "100-M"

	Ledger LedgerAccounts
}

// LedgerAccounts names the account codes used by the event templates.
type LedgerAccounts struct {
	ClearingAccount           string
	RegistrationIncomeAccount string
	MemberSavingsAccount      string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("ACCOUNT_CACHE_TTL", "5m")
	v.SetDefault("WORKER_CONCURRENCY", 5)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("LEDGER_CLEARING_ACCOUNT", "1120")
	v.SetDefault("LEDGER_REGISTRATION_INCOME_ACCOUNT", "4210")
	v.SetDefault("LEDGER_MEMBER_SAVINGS_ACCOUNT", "2210")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		WorkerConcurrency: v.GetInt("WORKER_CONCURRENCY"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		Ledger: LedgerAccounts{
			ClearingAccount:           v.GetString("LEDGER_CLEARING_ACCOUNT"),
			RegistrationIncomeAccount: v.GetString("LEDGER_REGISTRATION_INCOME_ACCOUNT"),
			MemberSavingsAccount:      v.GetString("LEDGER_MEMBER_SAVINGS_ACCOUNT"),
		},
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	ttlStr := v.GetString("ACCOUNT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for ACCOUNT_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.AccountCacheTTL = ttl

	if cfg.WorkerConcurrency <= 0 {
		cfg.WorkerConcurrency = 5
	}

	for _, o := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg
}
