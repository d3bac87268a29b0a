package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/yamlfmt/ir"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 1024

// State checks that an event sequence is well formed and tracks the path
// of the node being read, for diagnostics.  Sources feed every event they
// produce through a State, so a broken sequence or excessive nesting is
// reported as an *Error instead of reaching the Builder.
type State struct {
	maxDepth int
	inDoc    bool
	roots    int
	stack    []item
}

type item struct {
	mapping bool
	n       int
	segment string
}

// NewState creates a State which rejects nesting deeper than maxDepth
// containers.  A maxDepth <= 0 means DefaultMaxDepth.
func NewState(maxDepth int) *State {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &State{maxDepth: maxDepth}
}

func (s *State) current() *item {
	return &s.stack[len(s.stack)-1]
}

func (s *State) errorf(ev *Event, sentinel error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p := s.CurrentPath(); p != "$" {
		msg += " at " + p
	}
	return &Error{Pos: ev.Pos, Msg: msg, Err: sentinel}
}

// value accounts for a node starting at the current position.
func (s *State) value(ev *Event) error {
	if !s.inDoc {
		return s.errorf(ev, ErrUnbalanced, "%s outside of a document", ev.Type)
	}
	if s.Depth() == 0 {
		if s.roots > 0 {
			return s.errorf(ev, ErrUnbalanced, "more than one root node")
		}
		s.roots++
		return nil
	}
	cur := s.current()
	if !cur.mapping {
		cur.segment = "[" + strconv.Itoa(cur.n) + "]"
	} else if cur.n%2 == 0 {
		cur.segment = ".?"
		if ev.Type == EventScalar {
			cur.segment = "." + ir.QuoteField(ev.Value)
		}
	}
	cur.n++
	return nil
}

// ProcessEvent checks ev against the events before it and updates the
// state.
func (s *State) ProcessEvent(ev *Event) error {
	switch ev.Type {
	case EventDocumentStart:
		if s.inDoc {
			return s.errorf(ev, ErrUnbalanced, "document start inside a document")
		}
		s.inDoc = true
		s.roots = 0

	case EventDocumentEnd:
		if !s.inDoc {
			return s.errorf(ev, ErrUnbalanced, "document end outside of a document")
		}
		if s.Depth() != 0 {
			return s.errorf(ev, ErrUnbalanced, "document end with %d open containers", s.Depth())
		}
		s.inDoc = false

	case EventSequenceStart, EventMappingStart:
		if err := s.value(ev); err != nil {
			return err
		}
		if s.Depth() >= s.maxDepth {
			return s.errorf(ev, ErrDepth, "exceeded max depth of %d", s.maxDepth)
		}
		s.stack = append(s.stack, item{mapping: ev.Type == EventMappingStart})

	case EventSequenceEnd, EventMappingEnd:
		if s.Depth() == 0 {
			return s.errorf(ev, ErrUnbalanced, "%s without start", ev.Type)
		}
		cur := s.current()
		if cur.mapping != (ev.Type == EventMappingEnd) {
			return s.errorf(ev, ErrUnbalanced, "%s closes a different container", ev.Type)
		}
		if cur.mapping && cur.n%2 != 0 {
			return s.errorf(ev, ErrUnbalanced, "mapping key without value")
		}
		s.stack = s.stack[:len(s.stack)-1]

	case EventScalar, EventAlias:
		return s.value(ev)

	default:
		return s.errorf(ev, ErrUnbalanced, "unknown event type %d", ev.Type)
	}
	return nil
}

// Finish reports an error if the events so far leave a document or
// container open.
func (s *State) Finish(pos Pos) error {
	if s.inDoc || s.Depth() != 0 {
		return &Error{Pos: pos, Msg: "unexpected end of events", Err: ErrUnbalanced}
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// CurrentPath returns the path of the most recently started node, in the
// syntax of ir.ParsePath.  Complex keys appear as '?'.
func (s *State) CurrentPath() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for i := range s.stack {
		b.WriteString(s.stack[i].segment)
	}
	return b.String()
}
