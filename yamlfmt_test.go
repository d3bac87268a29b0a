package yamlfmt

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/libdiff"
	"github.com/signadot/yamlfmt/parse"
)

func TestLoadSerialize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"a: 1", "---\na: 1\n"},
		{"[1, '2', 3.0, ~, true]", "---\n- 1\n- \"2\"\n- 3.0\n- ~\n- true\n"},
		{"a: &x {b: [1]}\nc: *x\n", "---\na: &x\n  b:\n    - 1\nc: *x\n"},
		{"? [a]\n: b\n", "---\n? - a\n: b\n"},
		{"x\n---\ny\n", "--- x\n--- y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			docs, err := LoadString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			outs := ir.ConvertAll(docs)
			got, err := Serialize(outs[0], outs[1:]...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.out, got); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDump(t *testing.T) {
	docs, err := LoadString("a: [1, {b: c}]\n---\nx\n")
	if err != nil {
		t.Fatal(err)
	}
	b := &strings.Builder{}
	if err := Dump(b, ir.ConvertAll(docs)...); err != nil {
		t.Fatal(err)
	}
	want := `---
String("a"):
        Integer(1)
        String("b"):
            String("c")
---
String("x")
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("dump (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	docs, err := LoadString("a: [1, \"1\", 0x10, .5, \"\", ~]\n? {k: [v]}\n: &n x\nr: *n\n---\n*n\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := RoundTrip(docs[0]); err != nil {
		t.Errorf("first document: %v", err)
	}
	if err := RoundTrip(docs[0], parse.WithSource(parse.SourceGoYAML)); err != nil {
		t.Errorf("first document with goyaml selected: %v", err)
	}
	// the anchor is in the first document
	if err := RoundTrip(docs[1]); err == nil {
		t.Error("alias to another document round tripped")
	}
}

func TestRoundTripAnchoredEmpty(t *testing.T) {
	docs, err := LoadString("&a\n---\nk: &b\nv: *b\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := ir.Anchored("a", ir.FromString("")); !docs[0].Equal(want) {
		t.Errorf("got %s, want %s", docs[0].Repr(), want.Repr())
	}
	for i, doc := range docs {
		if err := RoundTrip(doc); err != nil {
			t.Errorf("document %d: %v", i, err)
		}
	}
}

func TestRoundTripError(t *testing.T) {
	var err error = &RoundTripError{
		Edits: libdiff.Trees(ir.OutString("1"), ir.OutInt(1)),
	}
	if !errors.Is(err, ErrRoundTrip) {
		t.Errorf("error = %v", err)
	}
	if want := "round trip mismatch:\n-String(\"1\")\n+Integer(1)\n"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestConcurrentLoad(t *testing.T) {
	var g errgroup.Group
	for i := range 16 {
		g.Go(func() error {
			in := fmt.Sprintf("k: &a v%d\nr: *a\nn: %d\n", i, i)
			docs, err := LoadString(in)
			if err != nil {
				return err
			}
			if got, _ := docs[0].Get("r").AsString(); got != fmt.Sprintf("v%d", i) {
				return fmt.Errorf("load %d: r = %q", i, got)
			}
			return RoundTrip(docs[0])
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}
