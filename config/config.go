package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type WebServerConfig struct {
	Port            string `mapstructure:"port"`
	IP              string `mapstructure:"ip"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	AllowedOrigin   string `mapstructure:"allowed_origin"`
}

type SiteConfig struct {
	Name    string `mapstructure:"name"`
	BaseURL string `mapstructure:"base_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type RedisConfig struct {
	Address          string `mapstructure:"address"`
	Password         string `mapstructure:"password"`
	DB               int    `mapstructure:"db"`
	PoolSize         int    `mapstructure:"pool_size"`
	MinIdleConns     int    `mapstructure:"min_idle_conns"`
	OperationTimeout int    `mapstructure:"operation_timeout"`
}

type CacheConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxSizeMB   int  `mapstructure:"max_size_mb"`
	TTLSeconds  int  `mapstructure:"ttl_seconds"`
	CounterSize int  `mapstructure:"counter_size"`
}

// EndpointLimit is the fixed-window budget of a single form endpoint
type EndpointLimit struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// Window returns the window length as a duration
func (e EndpointLimit) Window() time.Duration {
	return time.Duration(e.WindowSeconds) * time.Second
}

type RateLimitConfig struct {
	// Global token-bucket throttle applied to every route
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`

	// Form submission limiter
	Backend              string        `mapstructure:"backend"` // "memory" or "redis"
	MaxEntries           int           `mapstructure:"max_entries"`
	SweepIntervalSeconds int           `mapstructure:"sweep_interval_seconds"`
	Contact              EndpointLimit `mapstructure:"contact"`
	Submission           EndpointLimit `mapstructure:"submission"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	FromEmail    string `mapstructure:"from_email"`
	FromName     string `mapstructure:"from_name"`
	AdminEmail   string `mapstructure:"admin_email"`   // business submissions
	ContactEmail string `mapstructure:"contact_email"` // contact form messages
	DirectoryURL string `mapstructure:"directory_url"`
}

type SecurityConfig struct {
	BotDetectionEnabled     bool     `mapstructure:"bot_detection_enabled"`
	BotMaxRequestsPerMinute int      `mapstructure:"bot_max_requests_per_minute"`
	WebsiteScreening        bool     `mapstructure:"website_screening"`
	BlockedWebsitePatterns  []string `mapstructure:"blocked_website_patterns"`
}

type Config struct {
	Environment string          `mapstructure:"environment"`
	WebServer   WebServerConfig `mapstructure:"webserver"`
	Site        SiteConfig      `mapstructure:"site"`
	Log         LogConfig       `mapstructure:"log"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Cache       CacheConfig     `mapstructure:"cache"`
	RateLimit   RateLimitConfig `mapstructure:"ratelimit"`
	Email       EmailConfig     `mapstructure:"email"`
	Security    SecurityConfig  `mapstructure:"security"`
}

// IsProduction reports whether the service runs with production settings
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Validate rejects settings the service cannot start with
func (c Config) Validate() error {
	var errs []error
	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("ratelimit.backend must be memory or redis, got %q", c.RateLimit.Backend))
	}
	for name, l := range map[string]EndpointLimit{"contact": c.RateLimit.Contact, "submission": c.RateLimit.Submission} {
		if l.MaxRequests <= 0 || l.WindowSeconds <= 0 {
			errs = append(errs, fmt.Errorf("ratelimit.%s needs positive max_requests and window_seconds", name))
		}
	}
	// bounds both the memory store and the global throttle
	if c.RateLimit.MaxEntries <= 0 {
		errs = append(errs, errors.New("ratelimit.max_entries must be positive"))
	}
	return errors.Join(errs...)
}

func LoadConfig() (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Enable environment variable overrides, e.g. WOMANOWNED_RATELIMIT_BACKEND
	v.SetEnvPrefix("WOMANOWNED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// The config file is optional; defaults and env are enough to run
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Error reading config file: %v", err)
			return config, err
		}
	}

	// Console output outside production, JSON in production, unless log.pretty is set
	if !v.IsSet("log.pretty") {
		v.SetDefault("log.pretty", !strings.EqualFold(v.GetString("environment"), "production"))
	}

	if err := v.Unmarshal(&config); err != nil {
		log.Printf("Unable to decode into struct: %v", err)
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func MustLoadConfig() Config {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// WebServer defaults
	v.SetDefault("webserver.port", "8080")
	v.SetDefault("webserver.ip", "127.0.0.1")
	v.SetDefault("webserver.read_timeout", 15)
	v.SetDefault("webserver.write_timeout", 15)
	v.SetDefault("webserver.shutdown_timeout", 30)
	v.SetDefault("webserver.allowed_origin", "*")

	// Site defaults
	v.SetDefault("site.name", "Woman-Owned.com")
	v.SetDefault("site.base_url", "https://woman-owned.com")

	// Log defaults
	v.SetDefault("log.level", "info")

	// Redis defaults (only dialed when ratelimit.backend is redis)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.operation_timeout", 2)

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_size_mb", 16)
	v.SetDefault("cache.ttl_seconds", 300) // 5 minutes
	v.SetDefault("cache.counter_size", 10000)

	// RateLimit defaults
	v.SetDefault("ratelimit.requests_per_second", 20.0)
	v.SetDefault("ratelimit.burst", 40)
	v.SetDefault("ratelimit.backend", "memory")
	v.SetDefault("ratelimit.max_entries", 10000)
	v.SetDefault("ratelimit.sweep_interval_seconds", 300)
	v.SetDefault("ratelimit.contact.max_requests", 10)
	v.SetDefault("ratelimit.contact.window_seconds", 900) // 15 minutes
	v.SetDefault("ratelimit.submission.max_requests", 5)
	v.SetDefault("ratelimit.submission.window_seconds", 900)

	// Email defaults; sending is not implemented, payloads are logged and dropped
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.from_email", "hello@woman-owned.com")
	v.SetDefault("email.from_name", "Woman-Owned")
	v.SetDefault("email.admin_email", "admin@woman-owned.com")
	v.SetDefault("email.contact_email", "hello@woman-owned.com")
	v.SetDefault("email.directory_url", "https://woman-owned.com/directory")

	// Security defaults
	v.SetDefault("security.bot_detection_enabled", false)
	v.SetDefault("security.bot_max_requests_per_minute", 30)
	v.SetDefault("security.website_screening", true)
	v.SetDefault("security.blocked_website_patterns", []string{})
}
