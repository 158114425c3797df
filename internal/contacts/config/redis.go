package config

import (
	"fmt"
	"time"
)

// RedisConfig представляет конфигурацию Redis-кэша.
// Кэш необязателен: при Enabled=false сервис работает без него.
type RedisConfig struct {
	Enabled         bool          `yaml:"enabled" env:"CONTACTS_REDIS_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"CONTACTS_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"CONTACTS_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"CONTACTS_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"CONTACTS_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"CONTACTS_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"CONTACTS_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"CONTACTS_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"CONTACTS_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"CONTACTS_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"CONTACTS_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"CONTACTS_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	DefaultTTL      time.Duration `yaml:"default_ttl" env:"CONTACTS_REDIS_DEFAULT_TTL" env-default:"10m"`
}

// GetAddressString возвращает адрес Redis в формате host:port.
func (c *RedisConfig) GetAddressString() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
