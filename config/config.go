package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig is the Postgres connection of one environment.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

// DSN is the keyword/value form used by gorm's postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone)
}

// URL is the postgres:// form used by the migration runner.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type Config struct {
	// ENV picks the DEV_, QC_ or PROD_ database variables.
	Env  string
	Port string

	DB DatabaseConfig

	RedisAddr     string
	RedisUser     string
	RedisPassword string

	AMQPURL      string
	AMQPExchange string

	LogLevel string

	// RevenueCacheTTL enables the Redis revenue cache when positive.
	RevenueCacheTTL time.Duration

	CORSAllowedOrigins []string

	RunMigrations bool
}

var envPrefixes = map[string]string{
	"dev":  "DEV_",
	"qc":   "QC_",
	"prod": "PROD_",
}

// LoadEnv reads .env into the process environment. A missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using process environment: %v", err)
	}
}

// Load builds the configuration from the environment.
func Load() *Config {
	LoadEnv()

	env := strings.ToLower(getEnv("ENV", "dev"))
	prefix := envPrefixes[env]

	return &Config{
		Env:  env,
		Port: getEnv("PORT", "8083"),
		DB: DatabaseConfig{
			Host:     os.Getenv(prefix + "DB_HOST"),
			Port:     getEnv(prefix+"DB_PORT", "5432"),
			User:     os.Getenv(prefix + "DB_USER"),
			Password: os.Getenv(prefix + "DB_PASSWORD"),
			Name:     os.Getenv(prefix + "DB_NAME"),
			SSLMode:  getEnv(prefix+"DB_SSLMODE", "require"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "salestracker"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		RevenueCacheTTL: getEnvDuration("REVENUE_CACHE_TTL", 0),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),

		RunMigrations: getEnvBool("MIGRATIONS", true),
	}
}

// CacheEnabled reports whether the revenue cache should be used.
func (c *Config) CacheEnabled() bool {
	return c.RevenueCacheTTL > 0
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, ok := envPrefixes[c.Env]; !ok {
		errs = append(errs, fmt.Sprintf("unknown environment '%s': must be dev, qc or prod", c.Env))
	}

	if c.DB.Host == "" || c.DB.Name == "" || c.DB.User == "" {
		errs = append(errs, "database host, name and user are required")
	}

	if c.RevenueCacheTTL < 0 {
		errs = append(errs, "REVENUE_CACHE_TTL must not be negative")
	}
	if c.CacheEnabled() && c.RedisAddr == "" {
		errs = append(errs, "REDIS_ADDR is required when REVENUE_CACHE_TTL is set")
	}

	if c.AMQPURL != "" {
		u, err := url.Parse(c.AMQPURL)
		if err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			errs = append(errs, "AMQP_URL must be an amqp:// or amqps:// URL")
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP_EXCHANGE is required when AMQP_URL is set")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// String renders the configuration with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("env=%s port=%s db=%s@%s:%s/%s redis=%s cache_ttl=%s amqp=%s exchange=%s log_level=%s migrations=%t",
		c.Env, c.Port, c.DB.User, c.DB.Host, c.DB.Port, c.DB.Name,
		orNone(c.RedisAddr), c.RevenueCacheTTL, maskURL(c.AMQPURL), c.AMQPExchange, c.LogLevel, c.RunMigrations)
}

func maskURL(raw string) string {
	if raw == "" {
		return "none"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid"
	}
	if u.User != nil {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
