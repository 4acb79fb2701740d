package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Recovery   RecoveryConfig   `mapstructure:"recovery"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Resilience ResilienceConfig `mapstructure:"resilience"`
	Billing    BillingConfig    `mapstructure:"billing"`
	Notify     NotifyConfig     `mapstructure:"notify"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// IsProduction reports whether the server runs in release mode.
// Webhook verification and rate limiting fail closed only in this mode.
func (s ServerConfig) IsProduction() bool {
	return s.Mode == "release"
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// WebhookConfig tunes inbound webhook verification.
type WebhookConfig struct {
	Secret     string        `mapstructure:"secret"`      // Shared HMAC secret with the billing platform
	SkewWindow time.Duration `mapstructure:"skew_window"` // Max |now - timestamp| drift
}

// RecoveryConfig holds fallback recovery-campaign settings used when a
// company has no CreatorSettings row of its own.
type RecoveryConfig struct {
	AttributionWindowDays int   `mapstructure:"attribution_window_days"`
	ReminderOffsetsDays   []int `mapstructure:"reminder_offsets_days"`
	IncentiveDays         int   `mapstructure:"incentive_days"`
	EnablePush            bool  `mapstructure:"enable_push"`
	EnableDM              bool  `mapstructure:"enable_dm"`
}

// SchedulerConfig tunes the reminder cycle.
type SchedulerConfig struct {
	CronSecret        string        `mapstructure:"cron_secret"`         // Shared secret for POST /scheduler
	CycleBudget       time.Duration `mapstructure:"cycle_budget"`        // Wall-clock budget per cycle
	PerCompanyTimeout time.Duration `mapstructure:"per_company_timeout"` // Abandon a company past this
	LockTTL           time.Duration `mapstructure:"lock_ttl"`            // Advisory lock expiry
}

// ResilienceConfig tunes retry and circuit breaker defaults for outbound calls.
type ResilienceConfig struct {
	MaxRetries       int           `mapstructure:"max_retries"`
	BaseDelay        time.Duration `mapstructure:"base_delay"`
	Multiplier       float64       `mapstructure:"multiplier"`
	MaxDelay         time.Duration `mapstructure:"max_delay"`
	FailureThreshold int           `mapstructure:"failure_threshold"`
	SuccessThreshold int           `mapstructure:"success_threshold"`
	RecoveryTimeout  time.Duration `mapstructure:"recovery_timeout"`
}

// BillingConfig points at the upstream billing platform API.
type BillingConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// NotifyConfig points at the push/DM notification providers.
type NotifyConfig struct {
	PushURL string        `mapstructure:"push_url"`
	DMURL   string        `mapstructure:"dm_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: RRS_ (Revenue Recovery Service).
// Nested keys use underscore: RRS_DATABASE_HOST, RRS_WEBHOOK_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "revenue_recovery")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "revenue-recovery")
	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.skew_window", "300s")
	v.SetDefault("recovery.attribution_window_days", 14)
	v.SetDefault("recovery.reminder_offsets_days", []int{0, 2, 4})
	v.SetDefault("recovery.incentive_days", 0)
	v.SetDefault("recovery.enable_push", true)
	v.SetDefault("recovery.enable_dm", false)
	v.SetDefault("scheduler.cron_secret", "")
	v.SetDefault("scheduler.cycle_budget", "4m")
	v.SetDefault("scheduler.per_company_timeout", "30s")
	v.SetDefault("scheduler.lock_ttl", "60s")
	v.SetDefault("resilience.max_retries", 3)
	v.SetDefault("resilience.base_delay", "200ms")
	v.SetDefault("resilience.multiplier", 2.0)
	v.SetDefault("resilience.max_delay", "5s")
	v.SetDefault("resilience.failure_threshold", 5)
	v.SetDefault("resilience.success_threshold", 2)
	v.SetDefault("resilience.recovery_timeout", "30s")
	v.SetDefault("billing.base_url", "https://api.billing.example.com")
	v.SetDefault("billing.api_key", "")
	v.SetDefault("billing.timeout", "10s")
	v.SetDefault("notify.push_url", "https://push.example.com/v1/send")
	v.SetDefault("notify.dm_url", "https://dm.example.com/v1/send")
	v.SetDefault("notify.api_key", "")
	v.SetDefault("notify.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RRS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("RRS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
