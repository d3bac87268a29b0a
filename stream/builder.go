package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/yamlfmt/debug"
	"github.com/signadot/yamlfmt/ir"
)

// Builder assembles documents from events.
//
// The builder is a shift-reduce machine over two stacks.  The value stack
// holds the containers currently open, innermost last; each open mapping
// also has a slot on the key stack holding its pending key, or nil when the
// next node read is a key.  A node is created when its closing event is
// processed, so nothing is modified once built.
//
// The builder trusts its events: a sequence no conforming Source produces
// makes ProcessEvent panic with a *ProtocolError.
type Builder struct {
	opts    buildOpts
	values  []frame
	keys    []*ir.Node
	open    int
	docs    []*ir.Node
	anchors *Anchors
}

// frame is an entry on the value stack: either an open container, or a
// completed root node waiting for the end of its document.
type frame struct {
	node *ir.Node

	hash   bool
	vals   []*ir.Node
	kvs    []ir.KeyVal
	anchor string
	pos    Pos
}

func NewBuilder(opts ...BuildOption) *Builder {
	b := &Builder{anchors: NewAnchors()}
	for _, opt := range opts {
		opt(&b.opts)
	}
	if b.opts.maxDepth <= 0 {
		b.opts.maxDepth = DefaultMaxDepth
	}
	return b
}

func (b *Builder) fault(ev *Event, format string, args ...any) {
	panic(&ProtocolError{Pos: ev.Pos, Event: ev.String(), Msg: fmt.Sprintf(format, args...)})
}

// ProcessEvent applies ev.  The only error it returns is an *Error wrapping
// ErrDepth.
func (b *Builder) ProcessEvent(ev *Event) error {
	if debug.Build() {
		debug.Logf("build %s depth=%d", ev, b.open)
	}
	switch ev.Type {
	case EventDocumentStart:
		if len(b.values) != 0 {
			b.fault(ev, "document start with %d nodes on the stack", len(b.values))
		}
		if b.opts.scopeAnchors {
			b.anchors.Reset()
		}

	case EventDocumentEnd:
		switch len(b.values) {
		case 0:
			b.docs = append(b.docs, ir.BadValue())
		case 1:
			f := b.values[0]
			if f.node == nil {
				b.fault(ev, "document end with an open container")
			}
			b.values = b.values[:0]
			b.docs = append(b.docs, f.node)
		default:
			b.fault(ev, "document end with %d nodes on the stack", len(b.values))
		}

	case EventSequenceStart, EventMappingStart:
		if b.open >= b.opts.maxDepth {
			return &Error{Pos: ev.Pos, Msg: fmt.Sprintf("exceeded max depth of %d", b.opts.maxDepth), Err: ErrDepth}
		}
		b.open++
		f := frame{hash: ev.Type == EventMappingStart, anchor: ev.Anchor, pos: ev.Pos}
		b.values = append(b.values, f)
		if f.hash {
			b.keys = append(b.keys, nil)
		}

	case EventSequenceEnd:
		f := b.pop(ev, false)
		b.finish(ev, ir.FromSlice(f.vals), f.anchor)

	case EventMappingEnd:
		n := len(b.keys)
		if n == 0 {
			b.fault(ev, "mapping end without mapping")
		}
		if b.keys[n-1] != nil {
			b.fault(ev, "mapping end with pending key %s", b.keys[n-1].Repr())
		}
		b.keys = b.keys[:n-1]
		f := b.pop(ev, true)
		b.finish(ev, ir.FromKeyVals(f.kvs), f.anchor)

	case EventScalar:
		b.finish(ev, ResolveScalar(ev), ev.Anchor)

	case EventAlias:
		b.insert(ev, ir.Aliased(ev.Value, b.anchors.Get(ev.Value)))

	default:
		b.fault(ev, "unknown event type")
	}
	return nil
}

func (b *Builder) pop(ev *Event, hash bool) frame {
	n := len(b.values)
	if n == 0 {
		b.fault(ev, "end without start")
	}
	f := b.values[n-1]
	if f.node != nil || f.hash != hash {
		b.fault(ev, "end does not match the open container")
	}
	b.values = b.values[:n-1]
	b.open--
	return f
}

// finish records an anchored node and inserts it, wrapped, into its
// parent.  The table holds the unwrapped node.
func (b *Builder) finish(ev *Event, node *ir.Node, anchor string) {
	if anchor != "" {
		b.anchors.Set(anchor, node)
		node = ir.Anchored(anchor, node)
	}
	b.insert(ev, node)
}

func (b *Builder) insert(ev *Event, node *ir.Node) {
	n := len(b.values)
	if n == 0 {
		b.values = append(b.values, frame{node: node})
		return
	}
	top := &b.values[n-1]
	switch {
	case top.node != nil:
		b.fault(ev, "second root node")
	case !top.hash:
		top.vals = append(top.vals, node)
	default:
		k := &b.keys[len(b.keys)-1]
		if *k == nil {
			*k = node
			return
		}
		top.kvs = append(top.kvs, ir.KeyVal{Key: *k, Val: node})
		*k = nil
	}
}

// Docs returns the documents completed so far.
func (b *Builder) Docs() []*ir.Node {
	return b.docs
}

// Anchors returns the anchor table of the builder.
func (b *Builder) Anchors() *Anchors {
	return b.anchors
}

// ResolveScalar returns the node for a Scalar event.  Quoted and block
// scalars are strings; plain scalars resolve by tag when one is given and
// by their text otherwise.
func ResolveScalar(ev *Event) *ir.Node {
	if ev.Style != Plain {
		return ir.FromString(ev.Value)
	}
	if ev.Tag != nil {
		return ir.FromTagged(ev.Tag.Handle, ev.Tag.Suffix, ev.Value)
	}
	return ir.FromPlain(ev.Value)
}

// Source produces the events of one input.
type Source interface {
	// ReadEvent returns the next event, or io.EOF after the last one.
	ReadEvent() (*Event, error)
}

// Build reads every event of src and returns the documents.  Any error
// from the source aborts the whole build.
func Build(src Source, opts ...BuildOption) ([]*ir.Node, error) {
	b := NewBuilder(opts...)
	var last Pos
	for {
		ev, err := src.ReadEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		last = ev.Pos
		if err := b.ProcessEvent(ev); err != nil {
			return nil, err
		}
	}
	if len(b.values) != 0 {
		panic(&ProtocolError{Pos: last, Event: "EOF", Msg: "events ended inside a document"})
	}
	return b.docs, nil
}
