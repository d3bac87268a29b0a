package yamlfmt

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/yamlfmt/encode"
	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/libdiff"
	"github.com/signadot/yamlfmt/parse"
)

var ErrRoundTrip = errors.New("round trip mismatch")

// RoundTripError describes a document which does not read back as the
// tree it was written from.
type RoundTripError struct {
	Text  string
	Edits []libdiff.Edit
}

func (e *RoundTripError) Error() string {
	return fmt.Sprintf("%s:\n%s", ErrRoundTrip, libdiff.Format(e.Edits, false))
}

func (e *RoundTripError) Unwrap() error {
	return ErrRoundTrip
}

// RoundTrip serializes the output tree of doc, loads the text again with
// opts and checks that the result converts to the same output tree.  The
// text is always reloaded through the yamlv3 source, since goyaml cannot
// read explicit collection keys back.
func RoundTrip(doc *ir.Node, opts ...parse.ParseOption) error {
	opts = append(slices.Clip(opts), parse.WithSource(parse.SourceYAMLv3))
	want := ir.Convert(doc)
	buf := &bytes.Buffer{}
	if err := encode.Encode(want, buf); err != nil {
		return err
	}
	docs, err := parse.Load(buf.Bytes(), opts...)
	if err != nil {
		return fmt.Errorf("reloading %q: %w", buf.String(), err)
	}
	if len(docs) != 1 {
		return fmt.Errorf("%w: %d documents reloaded", ErrRoundTrip, len(docs))
	}
	got := ir.Convert(docs[0])
	if got.Equal(want) {
		return nil
	}
	return &RoundTripError{Text: buf.String(), Edits: libdiff.Trees(want, got)}
}
