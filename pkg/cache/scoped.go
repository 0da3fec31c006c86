package cache

// ScopedKeyer wraps a Keyer with a prefix, giving callers separate cache
// namespaces. The CLI scopes keys by release version, so artifacts
// rendered by an older binary are never served after an upgrade that may
// have changed the drawing output.
//
// Example usage:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated
// keys. A nil inner keyer falls back to the default one.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlanKey generates a prefixed key for one rendered plan.
func (k *ScopedKeyer) PlanKey(configHash string, index int, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(configHash, index, opts)
}

// DocumentKey generates a prefixed key for the rendered document.
func (k *ScopedKeyer) DocumentKey(configHash string) string {
	return k.prefix + k.inner.DocumentKey(configHash)
}

// Ensure ScopedKeyer implements Keyer.
var _ Keyer = (*ScopedKeyer)(nil)
