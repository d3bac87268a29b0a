// Package goyaml is an event source reading YAML with github.com/goccy/go-yaml.
//
// The parser is stricter than yamlv3: a document made only of an anchor
// (`&a`) and explicit collection keys (`? []`) are syntax errors here.
package goyaml

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/yamlfmt/debug"
	"github.com/signadot/yamlfmt/source/yamlv3"
	"github.com/signadot/yamlfmt/stream"
)

// Decoder produces the events of a YAML stream.  The whole input is parsed
// up front; the AST is then walked with an explicit stack.
type Decoder struct {
	input []byte
	file  *ast.File
	docs  int
	state *stream.State
	stack []frame
	last  stream.Pos
	done  bool
}

type frame struct {
	end   stream.EventType
	items []ast.Node
	i     int
	pos   stream.Pos
}

type Option func(*Decoder)

// MaxDepth sets the nesting limit, see stream.NewState.
func MaxDepth(n int) Option {
	return func(d *Decoder) { d.state = stream.NewState(n) }
}

func NewDecoderBytes(b []byte, opts ...Option) *Decoder {
	d := &Decoder{input: b, state: stream.NewState(0)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewDecoderBytes(b, opts...), nil
}

// ReadEvent returns the next event, or io.EOF at the end of the stream.
func (d *Decoder) ReadEvent() (*stream.Event, error) {
	if d.done {
		return nil, io.EOF
	}
	if d.file == nil {
		f, err := parser.ParseBytes(d.input, 0, parser.AllowDuplicateMapKey())
		if err != nil {
			d.done = true
			return nil, syntaxError(err)
		}
		d.file = f
	}
	ev, err := d.next()
	if err != nil {
		d.done = true
		if errors.Is(err, io.EOF) {
			if ferr := d.state.Finish(d.last); ferr != nil {
				return nil, ferr
			}
		}
		return nil, err
	}
	if debug.Events() {
		debug.Logf("goyaml %s %s", ev.Pos, ev)
	}
	if err := d.state.ProcessEvent(ev); err != nil {
		d.done = true
		return nil, err
	}
	d.last = ev.Pos
	return ev, nil
}

func (d *Decoder) next() (*stream.Event, error) {
	if len(d.stack) == 0 {
		doc := d.nextDoc()
		if doc == nil {
			return nil, io.EOF
		}
		p := docPos(doc, d.last)
		d.stack = append(d.stack, frame{
			end:   stream.EventDocumentEnd,
			items: []ast.Node{doc.Body},
			pos:   p,
		})
		return &stream.Event{Type: stream.EventDocumentStart, Pos: p}, nil
	}
	top := &d.stack[len(d.stack)-1]
	if top.i == len(top.items) {
		ev := &stream.Event{Type: top.end, Pos: top.pos}
		d.stack = d.stack[:len(d.stack)-1]
		return ev, nil
	}
	n := top.items[top.i]
	top.i++
	return d.open(n, top.pos)
}

// nextDoc skips documents that carry neither content nor an explicit
// start marker.
func (d *Decoder) nextDoc() *ast.DocumentNode {
	for d.docs < len(d.file.Docs) {
		doc := d.file.Docs[d.docs]
		d.docs++
		if doc == nil {
			continue
		}
		if _, ok := doc.Body.(*ast.DirectiveNode); ok {
			continue
		}
		if doc.Start == nil {
			if _, ok := doc.Body.(*ast.CommentGroupNode); ok || doc.Body == nil {
				continue
			}
		}
		return doc
	}
	return nil
}

func (d *Decoder) open(n ast.Node, parent stream.Pos) (*stream.Event, error) {
	n, anchor, tag, err := unwrap(n)
	if err != nil {
		return nil, err
	}
	ev := &stream.Event{Type: stream.EventScalar, Anchor: anchor, Tag: tag, Pos: pos(n, parent)}
	switch x := n.(type) {
	case nil, *ast.CommentGroupNode:
	case *ast.NullNode:
		if x.Token != nil && x.Token.Type != token.ImplicitNullType {
			ev.Value = x.Token.Value
		}
	case *ast.SequenceNode:
		ev.Type = stream.EventSequenceStart
		d.stack = append(d.stack, frame{end: stream.EventSequenceEnd, items: x.Values, pos: ev.Pos})
	case *ast.MappingNode:
		ev.Type = stream.EventMappingStart
		items := make([]ast.Node, 0, 2*len(x.Values))
		for _, mv := range x.Values {
			items = append(items, mapKey(mv.Key), mv.Value)
		}
		d.stack = append(d.stack, frame{end: stream.EventMappingEnd, items: items, pos: ev.Pos})
	case *ast.MappingValueNode:
		ev.Type = stream.EventMappingStart
		items := []ast.Node{mapKey(x.Key), x.Value}
		d.stack = append(d.stack, frame{end: stream.EventMappingEnd, items: items, pos: ev.Pos})
	case *ast.AliasNode:
		if anchor != "" || tag != nil {
			return nil, &stream.Error{Pos: ev.Pos, Msg: "alias with properties", Err: stream.ErrSyntax}
		}
		ev.Type = stream.EventAlias
		ev.Value = tokenValue(x.Value)
	case *ast.StringNode:
		ev.Value = x.Value
		if tok := x.GetToken(); tok != nil {
			switch tok.Type {
			case token.SingleQuoteType:
				ev.Style = stream.SingleQuoted
			case token.DoubleQuoteType:
				ev.Style = stream.DoubleQuoted
			}
		}
	case *ast.LiteralNode:
		ev.Style = stream.Folded
		if x.Start != nil && x.Start.Type == token.LiteralType {
			ev.Style = stream.Literal
		}
		if x.Value != nil {
			ev.Value = x.Value.Value
		}
	default:
		ev.Value = tokenValue(n)
	}
	if ev.Type == stream.EventScalar && ev.Style == stream.Plain && ev.Tag == nil && ev.Anchor == "" && ev.Value == "" {
		ev.Value = "~"
	}
	return ev, nil
}

// unwrap strips node properties off n.
func unwrap(n ast.Node) (ast.Node, string, *stream.Tag, error) {
	var (
		anchor string
		tag    *stream.Tag
	)
	for {
		switch x := n.(type) {
		case *ast.AnchorNode:
			if anchor != "" {
				return nil, "", nil, &stream.Error{Pos: pos(x, stream.Pos{}), Msg: "node with two anchors", Err: stream.ErrSyntax}
			}
			anchor = tokenValue(x.Name)
			n = x.Value
		case *ast.TagNode:
			if x.Start != nil {
				tag = yamlv3.SplitTag(x.Start.Value)
			}
			n = x.Value
		case *ast.MappingKeyNode:
			n = x.Value
		default:
			return n, anchor, tag, nil
		}
	}
}

func mapKey(k ast.MapKeyNode) ast.Node {
	if k == nil {
		return nil
	}
	return k
}

func tokenValue(n ast.Node) string {
	if n == nil {
		return ""
	}
	tok := n.GetToken()
	if tok == nil {
		return ""
	}
	return tok.Value
}

// docPos is the position of the document start marker, or failing that of
// the first body token.  A DocumentNode delegates GetToken to its body, so
// pos must not be called on one directly.
func docPos(doc *ast.DocumentNode, def stream.Pos) stream.Pos {
	if doc.Start != nil && doc.Start.Position != nil {
		return stream.Pos{Line: doc.Start.Position.Line, Column: doc.Start.Position.Column}
	}
	if doc.Body == nil {
		return def
	}
	return pos(doc.Body, def)
}

func pos(n ast.Node, def stream.Pos) stream.Pos {
	if n == nil {
		return def
	}
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return def
	}
	return stream.Pos{Line: tok.Position.Line, Column: tok.Position.Column}
}

var posRE = regexp.MustCompile(`^\[(\d+):(\d+)\] (.*)$`)

func syntaxError(err error) error {
	line, _, _ := strings.Cut(err.Error(), "\n")
	res := &stream.Error{Msg: line, Err: stream.ErrSyntax}
	if m := posRE.FindStringSubmatch(line); m != nil {
		res.Pos.Line, _ = strconv.Atoi(m[1])
		res.Pos.Column, _ = strconv.Atoi(m[2])
		res.Msg = m[3]
	}
	return res
}
