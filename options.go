package hashgo

import (
	"log/slog"

	"github.com/hupe1980/hashgo/cache"
	"github.com/hupe1980/hashgo/codec"
	"github.com/hupe1980/hashgo/provider"
)

const (
	// DefaultAlgorithm is used by Hash and Number when none is given.
	DefaultAlgorithm = provider.NameSHA256
	// DefaultSyncAlgorithm is used by HashSync and NumberSync when none is given.
	DefaultSyncAlgorithm = provider.NameDJB2
	// DefaultCacheMaxSize is the default digest cache capacity.
	DefaultCacheMaxSize = cache.DefaultMaxSize
)

// WarningHandler receives the human-readable warning emitted when a requested
// algorithm is not registered and the default is substituted.
type WarningHandler func(msg string)

type options struct {
	providers             []provider.Provider
	includeBaseProviders  bool
	defaultAlgorithm      string
	defaultSyncAlgorithm  string
	cacheEnabled          bool
	cacheMaxSize          int
	propagateHookFailures bool
	fuzzy                 bool
	codec                 codec.Codec
	metricsCollector      MetricsCollector
	logger                *Logger
	warningHandler        WarningHandler
}

// Option configures a Hasher at construction.
type Option func(*options)

// WithProviders registers additional providers. They are loaded after the
// base providers, so a provider named like a base one replaces it.
func WithProviders(providers ...provider.Provider) Option {
	return func(o *options) {
		o.providers = append(o.providers, providers...)
	}
}

// WithoutBaseProviders skips registering provider.Base().
func WithoutBaseProviders() Option {
	return func(o *options) {
		o.includeBaseProviders = false
	}
}

// WithIncludeBaseProviders controls whether provider.Base() is registered.
func WithIncludeBaseProviders(include bool) Option {
	return func(o *options) {
		o.includeBaseProviders = include
	}
}

// WithDefaultAlgorithm sets the algorithm used by Hash and Number when none is
// given, and the fallback for unknown algorithms on that path.
func WithDefaultAlgorithm(name string) Option {
	return func(o *options) {
		o.defaultAlgorithm = name
	}
}

// WithDefaultSyncAlgorithm sets the algorithm used by HashSync and NumberSync
// when none is given, and the fallback for unknown algorithms on that path.
func WithDefaultSyncAlgorithm(name string) Option {
	return func(o *options) {
		o.defaultSyncAlgorithm = name
	}
}

// WithCache configures the digest cache.
// If maxSize <= 0, DefaultCacheMaxSize is used.
func WithCache(enabled bool, maxSize int) Option {
	return func(o *options) {
		o.cacheEnabled = enabled
		o.cacheMaxSize = maxSize
	}
}

// WithCacheEnabled turns the digest cache on or off.
func WithCacheEnabled(enabled bool) Option {
	return func(o *options) {
		o.cacheEnabled = enabled
	}
}

// WithCacheMaxSize sets the digest cache capacity.
func WithCacheMaxSize(maxSize int) Option {
	return func(o *options) {
		o.cacheMaxSize = maxSize
	}
}

// WithPropagateHookFailures makes a failing hook abort the computation and
// return its error. By default failures are logged and swallowed.
func WithPropagateHookFailures(propagate bool) Option {
	return func(o *options) {
		o.propagateHookFailures = propagate
	}
}

// WithFuzzyMatching sets the registry's default matching mode.
func WithFuzzyMatching(fuzzy bool) Option {
	return func(o *options) {
		o.fuzzy = fuzzy
	}
}

// WithCodec configures the serializer applied to values before hashing.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hashgo.BasicMetricsCollector{}
//	h := hashgo.New(hashgo.WithMetricsCollector(metrics))
//	// ... use h ...
//	stats := metrics.GetStats()
//	fmt.Printf("Hashes: %d, cache hits: %d\n", stats.HashCount, stats.CacheHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hashgo.NewJSONLogger(slog.LevelInfo)
//	h := hashgo.New(hashgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithWarningHandler receives algorithm fallback warnings in addition to the
// WARN log record.
func WithWarningHandler(fn WarningHandler) Option {
	return func(o *options) {
		o.warningHandler = fn
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		includeBaseProviders: true,
		defaultAlgorithm:     DefaultAlgorithm,
		defaultSyncAlgorithm: DefaultSyncAlgorithm,
		cacheEnabled:         true,
		cacheMaxSize:         DefaultCacheMaxSize,
		fuzzy:                true,
		codec:                codec.Default,
		metricsCollector:     NoopMetricsCollector{},
		logger:               NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// CallOption configures a single Hash, HashSync, Number or NumberSync call.
type CallOption func(*callOptions)

type callOptions struct {
	algorithm  string
	maxLength  int
	min        int64
	max        int64
	hashLength int
}

const (
	defaultMin        = 0
	defaultMax        = 100
	defaultHashLength = 16
)

// WithAlgorithm selects the algorithm for this call.
func WithAlgorithm(name string) CallOption {
	return func(o *callOptions) {
		o.algorithm = name
	}
}

// WithMaxLength truncates the returned hex digest to its first n characters.
// n <= 0 disables truncation. Number and NumberSync use WithHashLength instead.
func WithMaxLength(n int) CallOption {
	return func(o *callOptions) {
		o.maxLength = n
	}
}

// WithRange sets the inclusive output range of Number and NumberSync
// (default [0, 100]).
func WithRange(minValue, maxValue int64) CallOption {
	return func(o *callOptions) {
		o.min = minValue
		o.max = maxValue
	}
}

// WithHashLength sets how many leading hex characters Number and NumberSync
// consume (default 16). n <= 0 selects the default.
func WithHashLength(n int) CallOption {
	return func(o *callOptions) {
		o.hashLength = n
	}
}

func applyCallOptions(defaultAlgorithm string, optFns []CallOption) callOptions {
	o := callOptions{
		algorithm:  defaultAlgorithm,
		min:        defaultMin,
		max:        defaultMax,
		hashLength: defaultHashLength,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.algorithm == "" {
		o.algorithm = defaultAlgorithm
	}
	if o.hashLength <= 0 {
		o.hashLength = defaultHashLength
	}
	return o
}
