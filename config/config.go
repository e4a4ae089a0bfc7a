package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const EnvProduction = "production"

type Config struct {
	Env      string `env:"APP_ENV" env-default:"development"`
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Log      LogConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_URL"`
	Host            string        `env:"DB_HOST"     env-default:"localhost"`
	Port            string        `env:"DB_PORT"     env-default:"5432"`
	User            string        `env:"DB_USER"     env-default:"postgres"`
	Password        string        `env:"DB_PASSWORD" env-default:"postgres"`
	Name            string        `env:"DB_NAME"     env-default:"diskusi_bisnis"`
	SSLMode         string        `env:"DB_SSLMODE"  env-default:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"     env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"     env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME"  env-default:"1h"`
	SlowThreshold   time.Duration `env:"DB_SLOW_THRESHOLD"     env-default:"200ms"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE"       env-default:"true"`
}

// ConnString returns DATABASE_URL when set, otherwise a keyword/value DSN.
func (d DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"     env-default:"your-secret-key-change-this-in-production"`
	Expiration time.Duration `env:"JWT_EXPIRATION" env-default:"168h"`
}

// RedisConfig is optional; an empty Addr disables the cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB"        env-default:"0"`
	TagTTL   time.Duration `env:"REDIS_TAG_TTL"   env-default:"5m"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

type CORSConfig struct {
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders string `env:"CORS_ALLOWED_HEADERS" env-default:"Origin,Content-Type,Authorization"`
}

func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// Load reads .env when present, then environment variables over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProduction() && c.JWT.Secret == "your-secret-key-change-this-in-production" {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWT.Expiration <= 0 {
		return errors.New("JWT_EXPIRATION must be positive")
	}
	if c.Database.MaxOpenConns < 1 {
		return errors.New("DB_MAX_OPEN_CONNS must be at least 1")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
