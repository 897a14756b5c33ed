package lazyjson

import (
	"fmt"
	"io"

	"github.com/shardwell/lazyjson/internal/caps"
)

// Document is a convenience wrapper around a root Source plus parser
// Options, generalising the teacher's ParsedJson / Parse(b []byte,
// reuse *ParsedJson) shape (parsed_json.go, simdjson.go) from an
// eagerly-built tape to a Source the scanner reads on demand.
type Document struct {
	src     Source
	cfg     docConfig
	promote map[string]any
}

// Parse wraps b as the root Source of a new Document. b is not copied.
func Parse(b []byte, opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Document{src: NewBuffer(b), cfg: cfg}, nil
}

// ParseStream wraps r as a streaming-backed Document.
func ParseStream(r io.Reader, opts ...Option) *Document {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Document{src: NewStreamSource(r, cfg.streamChunkSize), cfg: cfg}
}

// Source returns the Document's backing Source.
func (d *Document) Source() Source { return d.src }

// Root constructs the document's root value.
func (d *Document) Root() (any, error) {
	if s, ok := d.src.(*StreamSource); ok {
		return StreamValue(s)
	}
	return Value(d.src)
}

// At walks path over the document, per spec.md §4.D. When
// WithCachePromotion is enabled, a previously-resolved path is served
// from the Document's own cache (never a global one) instead of being
// rescanned.
func (d *Document) At(path ...PathKey) (any, error) {
	if !d.cfg.cachePromotion {
		return d.resolve(path)
	}
	key := cacheKey(path)
	if v, ok := d.promote[key]; ok {
		return v, nil
	}
	v, err := d.resolve(path)
	if err != nil {
		return nil, err
	}
	if d.promote == nil {
		d.promote = make(map[string]any, caps.PromotionBuckets())
	}
	d.promote[key] = v
	return v, nil
}

func (d *Document) resolve(path []PathKey) (any, error) {
	if s, ok := d.src.(*StreamSource); ok {
		return Pump(s, func() (any, error) { return ValueAt(s, path...) })
	}
	return ValueAt(d.src, path...)
}

func cacheKey(path []PathKey) string {
	key := ""
	for _, p := range path {
		if p.IsInt {
			key += fmt.Sprintf("[%d]", p.Int)
		} else {
			key += "." + string(p.Str)
		}
	}
	return key
}

// Validate performs the structural nesting-depth pre-check described by
// WithMaxDepth: it walks every collection without materialising
// scalars, failing with a plain error (not a ParseError) if nesting
// exceeds cfg.maxDepth. This
// is strictly an opt-in convenience; it is never run implicitly by
// Value/ValueAt, which stay true to spec.md §1's "only detects
// malformed syntax that obstructs the traversal being performed".
func (d *Document) Validate() error {
	v, err := d.Root()
	if err != nil {
		return err
	}
	return validateDepth(v, 1, d.cfg.maxDepth)
}

func validateDepth(v any, depth, max int) error {
	if depth > max {
		return fmt.Errorf("lazyjson: nesting depth exceeds %d", max)
	}
	switch t := v.(type) {
	case *Array:
		it := t.Iter()
		for {
			child, ok, err := it.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := validateDepth(child, depth+1, max); err != nil {
				return err
			}
		}
	case *Object:
		it := t.Iter()
		for {
			pair, ok, err := it.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := validateDepth(pair.Value, depth+1, max); err != nil {
				return err
			}
		}
	default:
		return nil
	}
}
