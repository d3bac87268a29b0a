package stream

// BuildOption configures a Builder.
type BuildOption func(*buildOpts)

type buildOpts struct {
	scopeAnchors bool
	maxDepth     int
}

// ScopeAnchors makes anchors visible only within the document defining
// them.  By default an anchor remains visible to the documents after it.
func ScopeAnchors(v bool) BuildOption {
	return func(o *buildOpts) { o.scopeAnchors = v }
}

// BuildMaxDepth limits the number of containers open at once.  The default
// is DefaultMaxDepth.
func BuildMaxDepth(n int) BuildOption {
	return func(o *buildOpts) { o.maxDepth = n }
}
