package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
// Например: AMENITY_DATABASE_PASSWORD, AMENITY_AUTH_JWT_SECRET, AMENITY_RATE_LIMIT_RPS
// Имена выводятся из имён полей (split_words), тег envconfig не используем
const EnvPrefix = "AMENITY"

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrEnvOverride   = errors.New("config: failed to apply environment overrides")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server" split_words:"true"`
	Database    DatabaseConfig    `toml:"database" split_words:"true"`
	Logs        LogsConfig        `toml:"logs" split_words:"true"`
	Metrics     MetricsConfig     `toml:"metrics" split_words:"true"`
	UserService UserServiceConfig `toml:"user_service" split_words:"true"`
	Redis       RedisConfig       `toml:"redis" split_words:"true"`
	Events      EventsConfig      `toml:"events" split_words:"true"`
	Auth        AuthConfig        `toml:"auth" split_words:"true"`
	Booking     BookingConfig     `toml:"booking" split_words:"true"`
	RateLimit   RateLimitConfig   `toml:"rate_limit" split_words:"true"`
}

type ServerConfig struct {
	HTTPPort int `toml:"http_port" split_words:"true"`

	// Таймауты в секундах
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	RunMigrations   bool   `toml:"run_migrations" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

type UserServiceConfig struct {
	URL     string `toml:"url" split_words:"true"`
	Timeout int    `toml:"timeout" split_words:"true"` // секунды
}

// RedisConfig кэш справочника пользователей
// Пустой Addr - кэш выключен
type RedisConfig struct {
	Addr     string `toml:"addr" split_words:"true"`
	Password string `toml:"password" split_words:"true"`
	DB       int    `toml:"db" split_words:"true"`
	CacheTTL int    `toml:"cache_ttl" split_words:"true"` // секунды
}

// EventsConfig публикация событий бронирования в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled" split_words:"true"`
	URL      string `toml:"url" split_words:"true"`
	Exchange string `toml:"exchange" split_words:"true"`
}

// AuthConfig если JWTSecret пустой, пользователь берётся из заголовков X-User-ID / X-User-Role,
// которые выставляет gateway
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" split_words:"true"`
}

type BookingConfig struct {
	// Timezone часовой пояс комплекса, в нём считаются "сегодня" и окна отмены
	Timezone string `toml:"timezone" split_words:"true"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled" split_words:"true"`
	RPS     float64 `toml:"rps" split_words:"true"`
	Burst   int     `toml:"burst" split_words:"true"`
}

// Default конфигурация по умолчанию
func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "amenity_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			RunMigrations:   true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-amenity-booking",
		},
		UserService: UserServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
		Redis: RedisConfig{
			CacheTTL: 300,
		},
		Events: EventsConfig{
			Exchange: "amenity.events",
		},
		Booking: BookingConfig{
			Timezone: "UTC",
		},
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
	}
}

// Load читает конфигурацию
// Порядок: значения по умолчанию -> config.toml (если есть) -> .env -> переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.UserService.URL == "" {
		return fmt.Errorf("%w: user_service.url is required", ErrInvalidConfig)
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("%w: events.url is required when events are enabled", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location часовой пояс комплекса
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(b.Timezone)
}
