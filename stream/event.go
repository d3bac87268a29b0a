package stream

import (
	"fmt"
	"strconv"
	"strings"
)

// Event is a structural event produced by a Source.
type Event struct {
	Type EventType
	Pos  Pos

	// Anchor is set on SequenceStart, MappingStart and Scalar events which
	// define an anchor.
	Anchor string

	// Value is the text of a Scalar or the name of an Alias.
	Value string
	Style Style
	// Tag is the explicit tag of a Scalar, if any.
	Tag *Tag
}

// Pos is a 1-based source position.  The zero Pos means unknown.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Line == 0 {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Tag is an explicit scalar tag split into its handle and suffix, such as
// "!!" and "int" for !!int.  Tags given in full URI form have an empty
// handle.
type Tag struct {
	Handle string
	Suffix string
}

func (t *Tag) String() string {
	return t.Handle + t.Suffix
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventDocumentStart EventType = iota
	EventDocumentEnd
	EventSequenceStart
	EventSequenceEnd
	EventMappingStart
	EventMappingEnd
	EventScalar
	EventAlias
)

func (t EventType) String() string {
	switch t {
	case EventDocumentStart:
		return "DocumentStart"
	case EventDocumentEnd:
		return "DocumentEnd"
	case EventSequenceStart:
		return "SequenceStart"
	case EventSequenceEnd:
		return "SequenceEnd"
	case EventMappingStart:
		return "MappingStart"
	case EventMappingEnd:
		return "MappingEnd"
	case EventScalar:
		return "Scalar"
	case EventAlias:
		return "Alias"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"DocumentStart": EventDocumentStart,
		"DocumentEnd":   EventDocumentEnd,
		"SequenceStart": EventSequenceStart,
		"SequenceEnd":   EventSequenceEnd,
		"MappingStart":  EventMappingStart,
		"MappingEnd":    EventMappingEnd,
		"Scalar":        EventScalar,
		"Alias":         EventAlias,
	}[k]
	if !ok {
		return fmt.Errorf("unknown event type %q", k)
	}
	*t = pt
	return nil
}

// IsStart reports whether t opens a container.
func (t EventType) IsStart() bool {
	return t == EventSequenceStart || t == EventMappingStart
}

// IsEnd reports whether t closes a container.
func (t EventType) IsEnd() bool {
	return t == EventSequenceEnd || t == EventMappingEnd
}

// Style is the presentation style of a scalar.
type Style int

const (
	Plain Style = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case SingleQuoted:
		return "single-quoted"
	case DoubleQuoted:
		return "double-quoted"
	case Literal:
		return "literal"
	case Folded:
		return "folded"
	default:
		return "unknown"
	}
}

func (s Style) indicator() byte {
	switch s {
	case SingleQuoted:
		return '\''
	case DoubleQuoted:
		return '"'
	case Literal:
		return '|'
	case Folded:
		return '>'
	default:
		return ':'
	}
}

// String renders e in the notation of the YAML test suite, for example
//
//	+MAP &a
//	=VAL <!!int> :12
//	=ALI *a
func (e *Event) String() string {
	b := &strings.Builder{}
	switch e.Type {
	case EventDocumentStart:
		b.WriteString("+DOC")
	case EventDocumentEnd:
		b.WriteString("-DOC")
	case EventSequenceStart:
		b.WriteString("+SEQ")
	case EventSequenceEnd:
		b.WriteString("-SEQ")
	case EventMappingStart:
		b.WriteString("+MAP")
	case EventMappingEnd:
		b.WriteString("-MAP")
	case EventScalar:
		b.WriteString("=VAL")
	case EventAlias:
		b.WriteString("=ALI *" + e.Value)
		return b.String()
	}
	if e.Anchor != "" {
		b.WriteString(" &" + e.Anchor)
	}
	if e.Type != EventScalar {
		return b.String()
	}
	if e.Tag != nil {
		b.WriteString(" <" + e.Tag.String() + ">")
	}
	b.WriteByte(' ')
	b.WriteByte(e.Style.indicator())
	q := strconv.Quote(e.Value)
	b.WriteString(q[1 : len(q)-1])
	return b.String()
}
