package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lattice-engine/lattice/pkg/adapters/memory"
	"github.com/lattice-engine/lattice/pkg/adapters/redis"
	"github.com/lattice-engine/lattice/pkg/ports"
)

// ServeConfig configures the HTTP serve command.
type ServeConfig struct {
	Addr  string      `yaml:"addr"`
	Store StoreConfig `yaml:"store"`
}

// StoreConfig selects and configures the plan-store backend.
type StoreConfig struct {
	Backend string      `yaml:"backend"` // "memory" (default) or "redis"
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds the redis backend settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	TTL      string `yaml:"ttl"` // Go duration string, e.g. "24h"; empty means no expiry
}

// DefaultServeConfig returns the settings used when no config file is given.
func DefaultServeConfig() ServeConfig {
	return ServeConfig{
		Addr:  ":8080",
		Store: StoreConfig{Backend: "memory"},
	}
}

// LoadServeConfig reads a YAML config file, filling unset fields with
// defaults. An empty path returns the defaults unchanged.
func LoadServeConfig(path string) (ServeConfig, error) {
	cfg := DefaultServeConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

// BuildStore creates the configured plan store.
func (c StoreConfig) BuildStore() (ports.PlanStore, error) {
	switch c.Backend {
	case "", "memory":
		return memory.NewStore(), nil
	case "redis":
		var opts []redis.Option
		if c.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(c.Redis.Prefix))
		}
		if c.Redis.TTL != "" {
			ttl, err := time.ParseDuration(c.Redis.TTL)
			if err != nil {
				return nil, fmt.Errorf("invalid redis ttl %q: %w", c.Redis.TTL, err)
			}
			opts = append(opts, redis.WithTTL(ttl))
		}
		return redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB, opts...), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want memory or redis)", c.Backend)
	}
}
