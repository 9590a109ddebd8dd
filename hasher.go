package hashgo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/hashgo/cache"
	"github.com/hupe1980/hashgo/codec"
	"github.com/hupe1980/hashgo/hook"
	"github.com/hupe1980/hashgo/provider"
)

// Cache stores full-length digests keyed by algorithm and serialized value.
// *cache.FIFO is the default implementation.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Has(key string) bool
	Clear()
	Len() int
}

// Hasher computes deterministic fingerprints of arbitrary values.
//
// A Hasher owns a provider registry, a digest cache and a hook registry.
// Configuration setters may be called at any time and take effect on the next
// call; calls already in flight keep the registry, cache and codec they
// started with. Hasher is safe for concurrent use.
type Hasher struct {
	mu                    sync.RWMutex
	registry              *provider.Registry
	cache                 Cache
	codec                 codec.Codec
	defaultAlgorithm      string
	defaultSyncAlgorithm  string
	propagateHookFailures bool

	hooks          *hook.Registry
	logger         *Logger
	metrics        MetricsCollector
	warningHandler WarningHandler
}

// New creates a Hasher.
//
//	h := hashgo.New(hashgo.WithDefaultSyncAlgorithm("murmur3"))
//	fp, err := h.HashSync(map[string]any{"a": 1, "b": 2})
func New(optFns ...Option) *Hasher {
	o := applyOptions(optFns)

	registry := provider.NewRegistry()
	registry.SetFuzzy(o.fuzzy)
	if o.includeBaseProviders {
		registry.Load(provider.Base()...)
	}
	registry.Load(o.providers...)

	c := cache.NewFIFO(o.cacheMaxSize)
	c.SetEnabled(o.cacheEnabled)

	return &Hasher{
		registry:              registry,
		cache:                 c,
		codec:                 o.codec,
		defaultAlgorithm:      o.defaultAlgorithm,
		defaultSyncAlgorithm:  o.defaultSyncAlgorithm,
		propagateHookFailures: o.propagateHookFailures,
		hooks:                 hook.NewRegistry(),
		logger:                o.logger,
		metrics:               o.metricsCollector,
		warningHandler:        o.warningHandler,
	}
}

// mode selects between the context-aware and the blocking pipeline.
type mode uint8

const (
	modeAsync mode = iota
	modeSync
)

func (m mode) before() hook.Event {
	if m == modeSync {
		return hook.BeforeHashSync
	}
	return hook.BeforeHash
}

func (m mode) after() hook.Event {
	if m == modeSync {
		return hook.AfterHashSync
	}
	return hook.AfterHash
}

// call is the configuration captured at the start of one computation.
type call struct {
	h         *Hasher
	mode      mode
	registry  *provider.Registry
	cache     Cache
	codec     codec.Codec
	fallback  string
	propagate bool
	cacheHit  bool
}

func (h *Hasher) newCall(m mode) *call {
	h.mu.RLock()
	defer h.mu.RUnlock()

	fallback := h.defaultAlgorithm
	if m == modeSync {
		fallback = h.defaultSyncAlgorithm
	}
	return &call{
		h:         h,
		mode:      m,
		registry:  h.registry,
		cache:     h.cache,
		codec:     h.codec,
		fallback:  fallback,
		propagate: h.propagateHookFailures,
	}
}

// Hash returns the hex digest of v. The value is serialized with the
// configured codec, hashed with the selected algorithm (default
// DefaultAlgorithm) and optionally truncated with WithMaxLength.
//
// The before:hash and after:hash hooks run around the computation, also when
// the digest is served from the cache. ctx is passed to every hook and to the
// provider.
func (h *Hasher) Hash(ctx context.Context, v any, opts ...CallOption) (string, error) {
	c := h.newCall(modeAsync)
	o := applyCallOptions(c.fallback, opts)
	return h.observe(ctx, c, o.algorithm, func() (string, error) {
		return c.compute(ctx, &hook.Context{Value: v, Algorithm: o.algorithm, MaxLength: o.maxLength})
	})
}

// HashSync is the blocking form of Hash. It only runs blocking hooks
// (before:hashSync, after:hashSync) and requires a provider that implements
// provider.SyncProvider. The default algorithm is DefaultSyncAlgorithm.
func (h *Hasher) HashSync(v any, opts ...CallOption) (string, error) {
	c := h.newCall(modeSync)
	o := applyCallOptions(c.fallback, opts)
	ctx := context.Background()
	return h.observe(ctx, c, o.algorithm, func() (string, error) {
		return c.compute(ctx, &hook.Context{Value: v, Algorithm: o.algorithm, MaxLength: o.maxLength})
	})
}

func (h *Hasher) observe(ctx context.Context, c *call, algorithm string, fn func() (string, error)) (string, error) {
	start := time.Now()
	digest, err := fn()

	h.metrics.RecordHash(algorithm, c.mode == modeSync, c.cacheHit, time.Since(start), err)
	h.logger.LogHash(ctx, algorithm, c.mode == modeSync, c.cacheHit, err)
	return digest, err
}

// compute is shared by both pipelines; only runHooks and digest branch on
// the mode.
func (c *call) compute(ctx context.Context, hc *hook.Context) (string, error) {
	if err := c.runHooks(ctx, c.mode.before(), hc); err != nil {
		return "", err
	}

	serialized, err := codec.Stringify(c.codec, hc.Value)
	if err != nil {
		return "", fmt.Errorf("serialize value: %w", err)
	}
	key := cache.Key(hc.Algorithm, serialized)

	full, ok := c.cache.Get(key)
	if ok {
		c.cacheHit = true
	} else {
		p, err := c.resolve(ctx, hc.Algorithm)
		if err != nil {
			return "", err
		}
		full, err = c.digest(ctx, p, []byte(serialized))
		if err != nil {
			return "", fmt.Errorf("digest with %q: %w", p.Name(), err)
		}
		c.cache.Set(key, full)
	}

	hc.Hash = truncate(full, hc.MaxLength)

	if err := c.runHooks(ctx, c.mode.after(), hc); err != nil {
		return "", err
	}
	return hc.Hash, nil
}

// resolve looks up name, substituting the mode's default algorithm (with a
// warning) when it is not registered.
func (c *call) resolve(ctx context.Context, name string) (provider.Provider, error) {
	if p, ok := c.registry.Get(name); ok {
		return p, nil
	}

	c.h.warn(ctx, name, c.fallback)

	if p, ok := c.registry.Get(c.fallback); ok {
		return p, nil
	}

	notFound := &ProviderNotFoundError{Name: c.fallback, Requested: name, Sync: c.mode == modeSync}
	if c.mode == modeAsync {
		// The context-aware path can always fall back to a crypto digest.
		p, err := provider.NewCrypto(c.fallback)
		if err == nil {
			return p, nil
		}
		notFound.cause = err
	}
	return nil, notFound
}

func (c *call) digest(ctx context.Context, p provider.Provider, data []byte) (string, error) {
	if c.mode == modeAsync {
		return p.Digest(ctx, data)
	}
	sp, ok := provider.AsSync(p)
	if !ok {
		return "", &SyncUnsupportedError{Provider: p.Name()}
	}
	return sp.DigestSync(data)
}

func (c *call) runHooks(ctx context.Context, event hook.Event, hc *hook.Context) error {
	policy := hook.Policy{
		Propagate: c.propagate,
		OnFailure: func(err *hook.Error) {
			c.h.metrics.RecordHookFailure(string(err.Event), c.propagate)
			c.h.logger.LogHookFailure(ctx, string(err.Event), err.Index, err.Err, c.propagate)
		},
	}
	if c.mode == modeSync {
		return c.h.hooks.RunSync(event, hc, policy)
	}
	return c.h.hooks.Run(ctx, event, hc, policy)
}

func (h *Hasher) warn(ctx context.Context, requested, fallback string) {
	h.metrics.RecordFallback(requested, fallback)
	h.logger.LogFallback(ctx, requested, fallback)

	h.mu.RLock()
	fn := h.warningHandler
	h.mu.RUnlock()
	if fn != nil {
		fn(fallbackMessage(requested, fallback))
	}
}

// truncate returns the first n characters of digest, or digest unchanged if
// n <= 0 or n is not shorter than the digest.
func truncate(digest string, n int) string {
	if n > 0 && n < len(digest) {
		return digest[:n]
	}
	return digest
}

// On registers a context-aware hook for hook.BeforeHash or hook.AfterHash.
func (h *Hasher) On(event hook.Event, fn hook.Func) (hook.ID, error) {
	return h.hooks.On(event, fn)
}

// OnSync registers a blocking hook for any event.
func (h *Hasher) OnSync(event hook.Event, fn hook.SyncFunc) (hook.ID, error) {
	return h.hooks.OnSync(event, fn)
}

// Off removes a hook registered with On or OnSync.
func (h *Hasher) Off(event hook.Event, id hook.ID) bool {
	return h.hooks.Off(event, id)
}

// Hooks returns the hook registry.
func (h *Hasher) Hooks() *hook.Registry {
	return h.hooks
}

// Registry returns the provider registry.
func (h *Hasher) Registry() *provider.Registry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.registry
}

// SetRegistry replaces the provider registry. A nil registry is replaced by an
// empty one.
func (h *Hasher) SetRegistry(r *provider.Registry) {
	if r == nil {
		r = provider.NewRegistry()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.registry = r
}

// Providers returns the registered provider names in registration order.
func (h *Hasher) Providers() []string {
	return h.Registry().Names()
}

// Cache returns the digest cache.
func (h *Hasher) Cache() Cache {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cache
}

// SetCache replaces the digest cache. A nil cache disables caching.
func (h *Hasher) SetCache(c Cache) {
	if c == nil {
		c = noCache{}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cache = c
}

// ClearCache drops all cached digests.
func (h *Hasher) ClearCache() {
	h.Cache().Clear()
}

// Codec returns the serializer.
func (h *Hasher) Codec() codec.Codec {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.codec
}

// SetCodec replaces the serializer. A nil codec selects codec.Default.
func (h *Hasher) SetCodec(c codec.Codec) {
	if c == nil {
		c = codec.Default
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.codec = c
}

// DefaultAlgorithm returns the default algorithm of Hash and Number.
func (h *Hasher) DefaultAlgorithm() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.defaultAlgorithm
}

// SetDefaultAlgorithm sets the default algorithm of Hash and Number.
func (h *Hasher) SetDefaultAlgorithm(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaultAlgorithm = name
}

// DefaultSyncAlgorithm returns the default algorithm of HashSync and NumberSync.
func (h *Hasher) DefaultSyncAlgorithm() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.defaultSyncAlgorithm
}

// SetDefaultSyncAlgorithm sets the default algorithm of HashSync and NumberSync.
func (h *Hasher) SetDefaultSyncAlgorithm(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaultSyncAlgorithm = name
}

// PropagateHookFailures reports whether hook failures abort computations.
func (h *Hasher) PropagateHookFailures() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.propagateHookFailures
}

// SetPropagateHookFailures sets whether hook failures abort computations.
func (h *Hasher) SetPropagateHookFailures(propagate bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.propagateHookFailures = propagate
}

// SetWarningHandler replaces the fallback warning handler.
func (h *Hasher) SetWarningHandler(fn WarningHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.warningHandler = fn
}

type noCache struct{}

func (noCache) Get(string) (string, bool) { return "", false }
func (noCache) Set(string, string)        {}
func (noCache) Has(string) bool           { return false }
func (noCache) Clear()                    {}
func (noCache) Len() int                  { return 0 }

var _ Cache = (*cache.FIFO)(nil)
