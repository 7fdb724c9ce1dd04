package config

import (
	"fmt"
	"time"
)

const (
	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

// GatewayConfig конфигурация шлюза
type GatewayConfig struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Upstream  UpstreamConfig  `toml:"upstream"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// UpstreamConfig адрес основного сервера, таймаут в секундах
type UpstreamConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// RateLimitConfig ограничение частоты запросов на пользователя
type RateLimitConfig struct {
	Enabled       bool    `toml:"enabled"`
	Backend       string  `toml:"backend"` // memory | redis
	RPS           float64 `toml:"rps"`
	Burst         int     `toml:"burst"`
	Window        int     `toml:"window"`   // секунды, для redis
	MaxKeys       int     `toml:"max_keys"` // сколько ключей хранит memory-лимитер
	RedisAddr     string  `toml:"redis_addr"`
	RedisPassword string  `toml:"redis_password"`
	RedisDB       int     `toml:"redis_db"`
}

// WindowDuration окно счетчика для redis
func (r RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}

// Limit количество запросов в окне для redis
func (r RateLimitConfig) Limit() int {
	limit := int(r.RPS * float64(r.Window))
	if limit < r.Burst {
		limit = r.Burst
	}
	return limit
}

// LoadGateway читает конфигурацию шлюза из TOML файла
func LoadGateway(path string) (*GatewayConfig, error) {
	cfg := &GatewayConfig{}
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *GatewayConfig) applyDefaults() {
	c.Server.applyDefaults(8081)
	c.Logs.applyDefaults()
	c.Metrics.applyDefaults("shareit-gateway")

	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 10
	}

	if c.RateLimit.Backend == "" {
		c.RateLimit.Backend = RateLimitMemory
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = 1
	}
	if c.RateLimit.MaxKeys == 0 {
		c.RateLimit.MaxKeys = 10000
	}
}

// Validate проверяет корректность значений
func (c *GatewayConfig) Validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}

	if c.Upstream.URL == "" {
		return fmt.Errorf("%w: upstream.url is required", ErrInvalidConfig)
	}

	if !c.RateLimit.Enabled {
		return nil
	}

	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 || c.RateLimit.Window < 0 || c.RateLimit.MaxKeys < 0 {
		return fmt.Errorf("%w: rate_limit values can not be negative", ErrInvalidConfig)
	}

	switch c.RateLimit.Backend {
	case RateLimitMemory:
	case RateLimitRedis:
		if c.RateLimit.RedisAddr == "" {
			return fmt.Errorf("%w: rate_limit.redis_addr is required for redis backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown rate_limit backend %q", ErrInvalidConfig, c.RateLimit.Backend)
	}

	return nil
}
