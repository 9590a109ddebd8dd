package provider

import "context"

type alias struct {
	name string
	p    Provider
}

func (a *alias) Name() string { return a.name }

func (a *alias) Digest(ctx context.Context, data []byte) (string, error) {
	return a.p.Digest(ctx, data)
}

type syncAlias struct {
	alias
	sp SyncProvider
}

func (a *syncAlias) DigestSync(data []byte) (string, error) { return a.sp.DigestSync(data) }

// Alias returns p registered under a different name. The result supports
// synchronous digests iff p does.
func Alias(name string, p Provider) Provider {
	if sp, ok := AsSync(p); ok {
		return &syncAlias{alias: alias{name: name, p: p}, sp: sp}
	}
	return &alias{name: name, p: p}
}
