package parse

import (
	"fmt"
	"slices"

	"github.com/signadot/yamlfmt/stream"
)

// Source names an event source implementation.
type Source string

const (
	SourceYAMLv3 Source = "yamlv3"
	SourceGoYAML Source = "goyaml"
)

// Sources lists the known event sources, the default first.
func Sources() []Source {
	return []Source{SourceYAMLv3, SourceGoYAML}
}

func (s Source) Valid() error {
	if slices.Contains(Sources(), s) {
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownSource, string(s))
}

type parseOpts struct {
	source       Source
	maxDepth     int
	scopeAnchors bool
}

func (o *parseOpts) BuildOpts() []stream.BuildOption {
	return []stream.BuildOption{
		stream.ScopeAnchors(o.scopeAnchors),
		stream.BuildMaxDepth(o.maxDepth),
	}
}

type ParseOption func(*parseOpts)

func WithSource(s Source) ParseOption {
	return func(o *parseOpts) { o.source = s }
}

// MaxDepth limits container nesting.  n <= 0 means stream.DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ScopeAnchors makes anchors visible only within the document defining
// them.
func ScopeAnchors(v bool) ParseOption {
	return func(o *parseOpts) { o.scopeAnchors = v }
}
