package provider

import (
	"context"
)

// Provider computes hex digests of byte slices.
type Provider interface {
	// Name is the key the provider is registered under.
	Name() string
	// Digest returns the lowercase hex digest of data. It may block and
	// should honor ctx cancellation.
	Digest(ctx context.Context, data []byte) (string, error)
}

// SyncProvider is a Provider that can also digest without a context.
type SyncProvider interface {
	Provider
	DigestSync(data []byte) (string, error)
}

// AsSync returns p as a SyncProvider if it supports synchronous digests.
func AsSync(p Provider) (SyncProvider, bool) {
	sp, ok := p.(SyncProvider)
	return sp, ok
}

// DigestFunc is the signature of a context-aware digest function.
type DigestFunc func(ctx context.Context, data []byte) (string, error)

type funcProvider struct {
	name string
	fn   DigestFunc
}

// NewFunc returns a Provider that only supports the context-aware path.
func NewFunc(name string, fn DigestFunc) Provider {
	return &funcProvider{name: name, fn: fn}
}

func (p *funcProvider) Name() string { return p.name }

func (p *funcProvider) Digest(ctx context.Context, data []byte) (string, error) {
	return p.fn(ctx, data)
}

type syncFuncProvider struct {
	name string
	fn   func(data []byte) (string, error)
}

// NewSyncFunc returns a SyncProvider backed by fn. Digest calls fn after
// checking ctx.
func NewSyncFunc(name string, fn func(data []byte) (string, error)) SyncProvider {
	return &syncFuncProvider{name: name, fn: fn}
}

func (p *syncFuncProvider) Name() string { return p.name }

func (p *syncFuncProvider) Digest(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.fn(data)
}

func (p *syncFuncProvider) DigestSync(data []byte) (string, error) { return p.fn(data) }

// Compile time checks.
var (
	_ Provider     = (*funcProvider)(nil)
	_ SyncProvider = (*syncFuncProvider)(nil)
)
