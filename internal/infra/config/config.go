package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Source SourceConfig `yaml:"source"`
	Engine EngineConfig `yaml:"engine"`
	Cache  CacheConfig  `yaml:"cache"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	CORSOrigins  []string      `yaml:"corsOrigins"`
}

// SourceConfig tells the record source where trending snapshots come
// from and how large a collection may get.
type SourceConfig struct {
	FixturePath     string `yaml:"fixturePath"`
	DefaultRegion   string `yaml:"defaultRegion"`
	MaxResults      int    `yaml:"maxResults"`
	ExtendedResults int    `yaml:"extendedResults"`
}

// EngineConfig holds the analytics tunables.
type EngineConfig struct {
	Clusters     int   `yaml:"clusters"`
	Seed         int64 `yaml:"seed"`
	MaxTerms     int   `yaml:"maxTerms"`
	TopKeywords  int   `yaml:"topKeywords"`
	SampleTitles int   `yaml:"sampleTitles"`
}

// CacheConfig contains connection information for report caching.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	TTL     time.Duration `yaml:"ttl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		cfg.HTTP.CORSOrigins = cfg.HTTP.CORSOrigins[:0]
		for _, origin := range origins {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.HTTP.CORSOrigins = append(cfg.HTTP.CORSOrigins, origin)
			}
		}
	}
	if v := os.Getenv("SOURCE_FIXTURE_PATH"); v != "" {
		cfg.Source.FixturePath = v
	}
	if v := os.Getenv("SOURCE_DEFAULT_REGION"); v != "" {
		cfg.Source.DefaultRegion = v
	}
	if v := os.Getenv("SOURCE_MAX_RESULTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Source.MaxResults = parsed
		}
	}
	if v := os.Getenv("SOURCE_EXTENDED_RESULTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Source.ExtendedResults = parsed
		}
	}
	if v := os.Getenv("ENGINE_CLUSTERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Engine.Clusters = parsed
		}
	}
	if v := os.Getenv("ENGINE_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Engine.Seed = parsed
		}
	}
	if v := os.Getenv("ENGINE_MAX_TERMS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Engine.MaxTerms = parsed
		}
	}
	if v := os.Getenv("ENGINE_KEYWORDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Engine.TopKeywords = parsed
		}
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Source: SourceConfig{
			FixturePath:     "",
			DefaultRegion:   "US",
			MaxResults:      100,
			ExtendedResults: 100,
		},
		Engine: EngineConfig{
			Clusters:     5,
			Seed:         42,
			MaxTerms:     1000,
			TopKeywords:  15,
			SampleTitles: 5,
		},
		Cache: CacheConfig{
			Enabled: false,
			Addr:    "",
			TTL:     5 * time.Minute,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Source.DefaultRegion) == "" {
		return errors.New("source.defaultRegion cannot be empty")
	}
	if c.Source.MaxResults < 1 || c.Source.MaxResults > 200 {
		return errors.New("source.maxResults must be between 1 and 200")
	}
	if c.Source.ExtendedResults < 1 || c.Source.ExtendedResults > 200 {
		return errors.New("source.extendedResults must be between 1 and 200")
	}
	if c.Engine.Clusters < 2 {
		return errors.New("engine.clusters must be at least 2")
	}
	if c.Engine.MaxTerms <= 0 {
		return errors.New("engine.maxTerms must be positive")
	}
	if c.Engine.TopKeywords <= 0 {
		return errors.New("engine.topKeywords must be positive")
	}
	if c.Engine.SampleTitles <= 0 {
		return errors.New("engine.sampleTitles must be positive")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr cannot be empty when report caching is enabled")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	return nil
}
