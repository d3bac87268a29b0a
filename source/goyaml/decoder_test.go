package goyaml

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/source/yamlv3"
	"github.com/signadot/yamlfmt/stream"
)

func load(t *testing.T, s string) []*ir.Node {
	t.Helper()
	docs, err := stream.Build(NewDecoderBytes([]byte(s)))
	if err != nil {
		t.Fatalf("load %q: %v", s, err)
	}
	return docs
}

func TestEvents(t *testing.T) {
	d := NewDecoderBytes([]byte("a: &x [1, 'q']\nb: *x\n"))
	var got []string
	for {
		ev, err := d.ReadEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, ev.String())
	}
	want := []string{
		"+DOC", "+MAP",
		"=VAL :a", "+SEQ &x", "=VAL :1", "=VAL 'q", "-SEQ",
		"=VAL :b", "=ALI *x",
		"-MAP", "-DOC",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestLoadScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"123", ir.FromInt(123)},
		{"0xFF", ir.FromInt(255)},
		{"1.5", ir.FromReal("1.5")},
		{"~", ir.Null()},
		{"true", ir.FromBool(true)},
		{"hello", ir.FromString("hello")},
		{"'12'", ir.FromString("12")},
		{`"true"`, ir.FromString("true")},
		{"!!int 12", ir.FromInt(12)},
		{"!!str 12", ir.FromString("12")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			docs := load(t, tt.in)
			if len(docs) != 1 {
				t.Fatalf("got %d documents", len(docs))
			}
			if !docs[0].Equal(tt.want) {
				t.Errorf("got %s, want %s", docs[0].Repr(), tt.want.Repr())
			}
		})
	}
}

func TestLoadStructure(t *testing.T) {
	doc := load(t, "a: 1\nb:\n  - x\n  - y\nc: &n {k: v}\nd: *n\n")[0]
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("b"), Val: ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromString("y")})},
	})
	if got := doc.Get("a"); !got.Equal(want.Get("a")) {
		t.Errorf("a = %s", got.Repr())
	}
	if got := doc.Get("b"); !got.Equal(want.Get("b")) {
		t.Errorf("b = %s", got.Repr())
	}
	if got, _ := doc.Get("d").Get("k").AsString(); got != "v" {
		t.Errorf("d.k = %q, want v", got)
	}
	if doc.Get("c").Type != ir.AnchoredType {
		t.Errorf("c = %s", doc.Get("c").Repr())
	}
}

func TestLoadDocuments(t *testing.T) {
	for _, in := range []string{"---", "--- #c", "# c\n---\n"} {
		docs := load(t, in)
		if len(docs) != 1 || !docs[0].IsNull() {
			t.Errorf("%q: got %d documents", in, len(docs))
		}
	}
	if docs := load(t, "# only a comment\n"); len(docs) != 0 {
		t.Errorf("comment only: got %d documents", len(docs))
	}
}

func TestDuplicateKeys(t *testing.T) {
	doc := load(t, "a: 1\na: 2\nb: 3\n")[0]
	if got, _ := doc.Get("a").AsInt64(); got != 2 {
		t.Errorf("a = %s, want 2", doc.Get("a").Repr())
	}
	if doc.Len() != 2 {
		t.Errorf("got %d keys, want 2", doc.Len())
	}
}

func TestEmptyValues(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"a:", ir.Null()},
		{"a: !!str", ir.FromString("")},
		{"a: !!null", nil},
		{"a: &x\nb: *x\n", ir.FromString("")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			doc := load(t, tt.in)[0]
			want, err := stream.Build(yamlv3.NewDecoderBytes([]byte(tt.in)))
			if err != nil {
				t.Fatal(err)
			}
			if !doc.Equal(want[0]) {
				t.Errorf("got %s, yamlv3 gives %s", doc.Repr(), want[0].Repr())
			}
			if tt.want != nil && !doc.Get("a").Resolve().Equal(tt.want) {
				t.Errorf("a = %s, want %s", doc.Get("a").Repr(), tt.want.Repr())
			}
		})
	}
}

// Explicit keys the serializer writes for collection keys either load as
// yamlv3 loads them or fail with a positioned error.
func TestExplicitKeys(t *testing.T) {
	for _, in := range []string{
		"---\n? []\n: 1\n",
		"---\n? &k\n  - 1\n  - 2\n: *k\n",
		"&a",
	} {
		want, err := stream.Build(yamlv3.NewDecoderBytes([]byte(in)))
		if err != nil {
			t.Fatalf("yamlv3 %q: %v", in, err)
		}
		got, err := stream.Build(NewDecoderBytes([]byte(in)))
		if err != nil {
			var serr *stream.Error
			if !errors.As(err, &serr) || serr.Pos.Line == 0 {
				t.Errorf("%q: error = %v, want positioned *stream.Error", in, err)
			}
			continue
		}
		if len(got) != len(want) || !got[0].Equal(want[0]) {
			t.Errorf("%q: got %v, yamlv3 gives %v", in, got, want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	for _, in := range []string{"a: b: c", "[a, b"} {
		_, err := stream.Build(NewDecoderBytes([]byte(in)))
		if !errors.Is(err, stream.ErrSyntax) {
			t.Errorf("%q: error = %v, want ErrSyntax", in, err)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	_, err := stream.Build(NewDecoderBytes([]byte("[[[x]]]"), MaxDepth(2)))
	if !errors.Is(err, stream.ErrDepth) {
		t.Errorf("error = %v, want ErrDepth", err)
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	err := syntaxError(errors.New("[2:5] mapping value is not allowed in this context\n>  2 | a: b: c"))
	var serr *stream.Error
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v", err)
	}
	want := stream.Pos{Line: 2, Column: 5}
	if serr.Pos != want || serr.Msg != "mapping value is not allowed in this context" {
		t.Errorf("got %+v", serr)
	}
}
