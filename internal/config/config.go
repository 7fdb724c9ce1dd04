package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация основного сервера
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Storage  StorageConfig  `toml:"storage"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Events   EventsConfig   `toml:"events"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	User              string `toml:"user"`
	Password          string `toml:"password"`
	DBName            string `toml:"dbname"`
	SSLMode           string `toml:"sslmode"`
	MaxOpenConns      int    `toml:"max_open_conns"`
	MaxIdleConns      int    `toml:"max_idle_conns"`
	ConnMaxLifetime   int    `toml:"conn_max_lifetime"`
	MigrationsEnabled bool   `toml:"migrations_enabled"`
}

// StorageConfig выбор хранилища
type StorageConfig struct {
	Backend string `toml:"backend"` // postgres | memory
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EventsConfig параметры публикации событий в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	AMQPURL  string `toml:"amqp_url"`
	Exchange string `toml:"exchange"`
}

// DSN строка подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию сервера из TOML файла.
// Перед разбором подгружается .env (если есть) и подставляются ${VAR}.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Server.applyDefaults(8080)

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendPostgres
	}

	c.Logs.applyDefaults()
	c.Metrics.applyDefaults("shareit-server")

	if c.Events.Exchange == "" {
		c.Events.Exchange = "shareit.bookings"
	}
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}

	switch c.Storage.Backend {
	case BackendPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database host, user and dbname are required for postgres backend", ErrInvalidConfig)
		}
		if c.Database.Port <= 0 {
			return fmt.Errorf("%w: database port must be positive", ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Events.Enabled && c.Events.AMQPURL == "" {
		return fmt.Errorf("%w: events.amqp_url is required when events are enabled", ErrInvalidConfig)
	}

	return nil
}

func (s *ServerConfig) applyDefaults(port int) {
	if s.HTTPPort == 0 {
		s.HTTPPort = port
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 15
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 15
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = 60
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10
	}
}

func (s *ServerConfig) validate() error {
	if s.HTTPPort <= 0 || s.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, s.HTTPPort)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.IdleTimeout < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server timeouts can not be negative", ErrInvalidConfig)
	}
	return nil
}

func (l *LogsConfig) applyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
}

func (m *MetricsConfig) applyDefaults(serviceName string) {
	if m.Path == "" {
		m.Path = "/metrics"
	}
	if m.ServiceName == "" {
		m.ServiceName = serviceName
	}
}

// decodeFile загружает .env, подставляет переменные окружения и разбирает TOML
func decodeFile(path string, dst interface{}) error {
	// .env необязателен
	_ = godotenv.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	if _, err := toml.Decode(os.ExpandEnv(string(raw)), dst); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}
