// Package yamlv3 is an event source reading YAML with gopkg.in/yaml.v3.
//
// Each document is parsed into a yaml.Node tree, which the Decoder then
// walks with an explicit stack, so deep input never deepens the Go stack
// beyond what the parser itself uses.
package yamlv3

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/signadot/yamlfmt/debug"
	"github.com/signadot/yamlfmt/stream"
)

const longTagPrefix = "tag:yaml.org,2002:"

// Decoder produces the events of a YAML stream.
type Decoder struct {
	dec   *yaml.Decoder
	state *stream.State
	stack []frame
	last  stream.Pos
	done  bool
}

type frame struct {
	node    *yaml.Node
	i       int
	started bool
}

type Option func(*Decoder)

// MaxDepth sets the nesting limit, see stream.NewState.
func MaxDepth(n int) Option {
	return func(d *Decoder) { d.state = stream.NewState(n) }
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{
		dec:   yaml.NewDecoder(r),
		state: stream.NewState(0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func NewDecoderBytes(b []byte, opts ...Option) *Decoder {
	return NewDecoder(bytes.NewReader(b), opts...)
}

// ReadEvent returns the next event, or io.EOF at the end of the stream.
func (d *Decoder) ReadEvent() (*stream.Event, error) {
	if d.done {
		return nil, io.EOF
	}
	ev, err := d.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			d.done = true
			if ferr := d.state.Finish(d.last); ferr != nil {
				return nil, ferr
			}
		}
		return nil, err
	}
	if debug.Events() {
		debug.Logf("yamlv3 %s %s", ev.Pos, ev)
	}
	if err := d.state.ProcessEvent(ev); err != nil {
		return nil, err
	}
	d.last = ev.Pos
	return ev, nil
}

func (d *Decoder) next() (*stream.Event, error) {
	for {
		if len(d.stack) == 0 {
			doc := &yaml.Node{}
			if err := d.dec.Decode(doc); err != nil {
				if errors.Is(err, io.EOF) {
					return nil, io.EOF
				}
				return nil, syntaxError(err)
			}
			d.stack = append(d.stack, frame{node: doc})
		}
		top := &d.stack[len(d.stack)-1]
		n := top.node
		if !top.started {
			top.started = true
			switch n.Kind {
			case yaml.DocumentNode:
				return event(n, stream.EventDocumentStart), nil
			case yaml.SequenceNode:
				return event(n, stream.EventSequenceStart), nil
			case yaml.MappingNode:
				return event(n, stream.EventMappingStart), nil
			case yaml.ScalarNode:
				d.pop()
				return scalarEvent(n), nil
			case yaml.AliasNode:
				d.pop()
				ev := event(n, stream.EventAlias)
				ev.Anchor = ""
				ev.Value = n.Value
				return ev, nil
			default:
				return nil, &stream.Error{Pos: pos(n), Msg: "unknown node kind " + strconv.Itoa(int(n.Kind)), Err: stream.ErrSyntax}
			}
		}
		if top.i < len(n.Content) {
			c := n.Content[top.i]
			top.i++
			d.stack = append(d.stack, frame{node: c})
			continue
		}
		d.pop()
		switch n.Kind {
		case yaml.DocumentNode:
			return &stream.Event{Type: stream.EventDocumentEnd, Pos: pos(n)}, nil
		case yaml.SequenceNode:
			return &stream.Event{Type: stream.EventSequenceEnd, Pos: pos(n)}, nil
		default:
			return &stream.Event{Type: stream.EventMappingEnd, Pos: pos(n)}, nil
		}
	}
}

func (d *Decoder) pop() {
	d.stack = d.stack[:len(d.stack)-1]
}

func pos(n *yaml.Node) stream.Pos {
	return stream.Pos{Line: n.Line, Column: n.Column}
}

func event(n *yaml.Node, t stream.EventType) *stream.Event {
	return &stream.Event{Type: t, Pos: pos(n), Anchor: n.Anchor}
}

func scalarEvent(n *yaml.Node) *stream.Event {
	ev := event(n, stream.EventScalar)
	ev.Value = n.Value
	switch {
	case n.Style&yaml.DoubleQuotedStyle != 0:
		ev.Style = stream.DoubleQuoted
	case n.Style&yaml.SingleQuotedStyle != 0:
		ev.Style = stream.SingleQuoted
	case n.Style&yaml.LiteralStyle != 0:
		ev.Style = stream.Literal
	case n.Style&yaml.FoldedStyle != 0:
		ev.Style = stream.Folded
	}
	if n.Style&yaml.TaggedStyle != 0 {
		ev.Tag = SplitTag(n.Tag)
	}
	if ev.Style == stream.Plain && ev.Tag == nil && ev.Anchor == "" && ev.Value == "" {
		ev.Value = "~"
	}
	return ev
}

// SplitTag splits a tag into handle and suffix.  Core schema tags come
// back with the "!!" handle whether written short or in full.
func SplitTag(tag string) *stream.Tag {
	switch {
	case strings.HasPrefix(tag, "!!"):
		return &stream.Tag{Handle: "!!", Suffix: tag[2:]}
	case strings.HasPrefix(tag, longTagPrefix):
		return &stream.Tag{Handle: "!!", Suffix: tag[len(longTagPrefix):]}
	case strings.HasPrefix(tag, "!"):
		i := strings.LastIndexByte(tag, '!')
		return &stream.Tag{Handle: tag[:i+1], Suffix: tag[i+1:]}
	default:
		return &stream.Tag{Suffix: tag}
	}
}

var lineRE = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

func syntaxError(err error) error {
	msg := err.Error()
	res := &stream.Error{Msg: strings.TrimPrefix(msg, "yaml: "), Err: stream.ErrSyntax}
	if m := lineRE.FindStringSubmatch(msg); m != nil {
		res.Pos.Line, _ = strconv.Atoi(m[1])
		res.Msg = m[2]
	}
	return res
}
