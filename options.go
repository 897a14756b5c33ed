package lazyjson

// defaultMaxDepth mirrors the teacher's own maxdepth constant
// (minio/simdjson-go's stage2 tape builder), reused here as the
// default guard against pathological nesting depth in Document's
// optional structural pre-check (see WithMaxDepth).
const defaultMaxDepth = 128

type docConfig struct {
	maxDepth        int
	cachePromotion  bool
	streamChunkSize int
}

func defaultConfig() docConfig {
	return docConfig{
		maxDepth:        defaultMaxDepth,
		cachePromotion:  false,
		streamChunkSize: defaultStreamChunk,
	}
}

// Option configures a Document, following the teacher's ParserOption
// functional-options shape (options.go's WithCopyStrings).
type Option func(*docConfig)

// WithMaxDepth bounds the nesting depth Document.Validate will accept
// before reporting an error, guarding against pathological input.
// It does not affect ordinary lazy navigation, which never materialises
// more of the document than a given access touches.
func WithMaxDepth(depth int) Option {
	return func(c *docConfig) { c.maxDepth = depth }
}

// WithCachePromotion enables the per-Document promotion cache described
// in spec.md §9's "global mutable state" design note: repeated lookups
// of the same path are served from a per-Document cache instead of
// re-scanning. The cache is scoped to one Document, never global.
func WithCachePromotion(enabled bool) Option {
	return func(c *docConfig) { c.cachePromotion = enabled }
}

// WithStreamChunkSize sets the read chunk size used by a Document built
// over an io.Reader via ParseStream.
func WithStreamChunkSize(n int) Option {
	return func(c *docConfig) {
		if n > 0 {
			c.streamChunkSize = n
		}
	}
}
