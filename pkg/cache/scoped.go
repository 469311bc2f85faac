package cache

// ScopedKeyer wraps a Keyer with a prefix. The pipeline scopes keys by
// build version so that a renderer change never serves stale artifacts:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GenerationKey generates a prefixed key for a circle set.
func (k *ScopedKeyer) GenerationKey(opts GenerationKeyOpts) string {
	return k.prefix + k.inner.GenerationKey(opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(generationKey string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(generationKey, opts)
}
