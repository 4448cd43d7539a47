// Package config loads the host configuration: logging, the optional Redis
// profile store, and the per-game option values.
package config

import (
	"os"
	"sort"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/pkg/logger"
)

// EnvPrefix prefixes every environment override, e.g. KEEP_REDIS_ADDR.
const EnvPrefix = "KEEP_"

// Config is the full host configuration
type Config struct {
	Log   LogConfig   `yaml:"log" envPrefix:"LOG_"`
	Redis RedisConfig `yaml:"redis" envPrefix:"REDIS_"`

	// Games maps a game ID to its raw option values. Values are checked
	// against the title's definitions when a provider is built.
	Games map[string]map[string]any `yaml:"games"`
}

// LogConfig selects the zap logger
type LogConfig struct {
	Mode  string `yaml:"mode" env:"MODE"`
	Level string `yaml:"level" env:"LEVEL"`
}

// RedisConfig configures the profile store. An empty Addr disables it.
type RedisConfig struct {
	Addr       string        `yaml:"addr" env:"ADDR"`
	DB         int           `yaml:"db" env:"DB"`
	Password   string        `yaml:"password" env:"PASSWORD"`
	UseTLS     bool          `yaml:"use_tls" env:"USE_TLS"`
	ProfileTTL time.Duration `yaml:"profile_ttl" env:"PROFILE_TTL"`
}

// Enabled reports whether a profile store is configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Mode:  logger.ModeProduction,
			Level: "info",
		},
		Games: map[string]map[string]any{},
	}
}

// Load reads the YAML file at path, when path is set, over the defaults and
// then applies KEEP_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFoundf("config file %s not found", path).WithMeta("path", path)
			}
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if cfg.Games == nil {
		cfg.Games = map[string]map[string]any{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// maxRedisDB is the highest database index a stock Redis server accepts
const maxRedisDB = 15

// Validate checks the fields that can be checked without the game registry
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("log.mode", c.Log.Mode,
		[]string{logger.ModeProduction, logger.ModeDevelopment, logger.ModeNop}, vb)
	errors.ValidateRange("redis.db", c.Redis.DB, 0, maxRedisDB, vb)
	if c.Redis.ProfileTTL < 0 {
		vb.Field("redis.profile_ttl", "must not be negative")
	}
	for _, id := range c.GameIDs() {
		if id == "" {
			vb.Field("games", "game ID must not be empty")
		}
	}

	if err := vb.Build(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// GameIDs returns the configured game IDs, sorted
func (c *Config) GameIDs() []string {
	ids := make([]string, 0, len(c.Games))
	for id := range c.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GameValues returns a copy of the raw option values for id, or nil when
// the game is not configured.
func (c *Config) GameValues(id string) map[string]any {
	values, ok := c.Games[id]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
