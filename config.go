package hashgo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/hashgo/codec"
	"github.com/hupe1980/hashgo/internal/conv"
	"github.com/hupe1980/hashgo/provider"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the Hasher options, typically loaded from
// YAML:
//
//	defaultAlgorithm: SHA-256
//	defaultSyncAlgorithm: murmur3
//	includeBaseProviders: true
//	propagateHookFailures: false
//	codec: go-json
//	logLevel: warn
//	cache:
//	  enabled: true
//	  maxSize: 10000
//	providers:
//	  - name: murmur3
//	    seed: 42
//	  - name: xxhash64
//	    alias: fast
//
// Unset fields keep their defaults.
type Config struct {
	Providers             []ProviderConfig `yaml:"providers"`
	IncludeBaseProviders  *bool            `yaml:"includeBaseProviders"`
	DefaultAlgorithm      string           `yaml:"defaultAlgorithm"`
	DefaultSyncAlgorithm  string           `yaml:"defaultSyncAlgorithm"`
	Cache                 CacheConfig      `yaml:"cache"`
	PropagateHookFailures bool             `yaml:"propagateHookFailures"`
	FuzzyMatching         *bool            `yaml:"fuzzyMatching"`
	Codec                 string           `yaml:"codec"`
	LogLevel              string           `yaml:"logLevel"`
}

// ProviderConfig selects a built-in provider by name (see provider.ByName).
type ProviderConfig struct {
	Name string `yaml:"name"`
	// Alias registers the provider under a different name.
	Alias string `yaml:"alias"`
	// Seed is only valid for murmur3.
	Seed *int `yaml:"seed"`
}

// CacheConfig configures the digest cache.
type CacheConfig struct {
	Enabled *bool `yaml:"enabled"`
	MaxSize int   `yaml:"maxSize"`
}

// ErrInvalidConfig is returned for configuration that cannot be applied.
var ErrInvalidConfig = errors.New("invalid config")

// ParseConfig decodes a YAML configuration. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		// An empty document decodes to the zero config.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// LoadConfig reads and parses the YAML configuration at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Options converts the configuration into Hasher options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option

	if c.IncludeBaseProviders != nil {
		opts = append(opts, WithIncludeBaseProviders(*c.IncludeBaseProviders))
	}
	if c.DefaultAlgorithm != "" {
		opts = append(opts, WithDefaultAlgorithm(c.DefaultAlgorithm))
	}
	if c.DefaultSyncAlgorithm != "" {
		opts = append(opts, WithDefaultSyncAlgorithm(c.DefaultSyncAlgorithm))
	}
	if c.Cache.Enabled != nil {
		opts = append(opts, WithCacheEnabled(*c.Cache.Enabled))
	}
	if c.Cache.MaxSize < 0 {
		return nil, fmt.Errorf("%w: cache.maxSize must not be negative, got %d", ErrInvalidConfig, c.Cache.MaxSize)
	}
	if c.Cache.MaxSize > 0 {
		opts = append(opts, WithCacheMaxSize(c.Cache.MaxSize))
	}
	if c.PropagateHookFailures {
		opts = append(opts, WithPropagateHookFailures(true))
	}
	if c.FuzzyMatching != nil {
		opts = append(opts, WithFuzzyMatching(*c.FuzzyMatching))
	}
	if c.Codec != "" {
		cd, ok := codec.ByName(c.Codec)
		if !ok {
			return nil, fmt.Errorf("%w: unknown codec %q", ErrInvalidConfig, c.Codec)
		}
		opts = append(opts, WithCodec(cd))
	}
	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, WithLogLevel(level))
	}

	providers := make([]provider.Provider, 0, len(c.Providers))
	for i, pc := range c.Providers {
		p, err := pc.build()
		if err != nil {
			return nil, fmt.Errorf("%w: providers[%d]: %w", ErrInvalidConfig, i, err)
		}
		providers = append(providers, p)
	}
	if len(providers) > 0 {
		opts = append(opts, WithProviders(providers...))
	}

	return opts, nil
}

func (pc ProviderConfig) build() (provider.Provider, error) {
	var (
		p   provider.Provider
		err error
	)
	if pc.Seed != nil {
		if strings.ToLower(strings.TrimSpace(pc.Name)) != provider.NameMurmur3 {
			return nil, fmt.Errorf("seed is only supported by %s, not %q", provider.NameMurmur3, pc.Name)
		}
		seed, cerr := conv.IntToUint32(*pc.Seed)
		if cerr != nil {
			return nil, fmt.Errorf("seed: %w", cerr)
		}
		p = provider.NewMurmur3(seed)
	} else {
		p, err = provider.ByName(pc.Name)
		if err != nil {
			return nil, err
		}
	}
	if pc.Alias != "" {
		p = provider.Alias(pc.Alias, p)
	}
	return p, nil
}

// NewFromConfig creates a Hasher from cfg. Additional options are applied
// after the configuration and take precedence.
func NewFromConfig(cfg *Config, optFns ...Option) (*Hasher, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, optFns...)...), nil
}
