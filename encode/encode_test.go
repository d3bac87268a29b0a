package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/parse"
)

func str(v string) *ir.Out { return ir.OutString(v) }

func kv(k, v *ir.Out) ir.OutKeyVal { return ir.OutKeyVal{Key: k, Val: v} }

type encodeTest struct {
	name string
	in   *ir.Out
	opts []EncodeOption
	out  string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			name: "scalar",
			in:   str("a"),
			out:  "--- a\n",
		},
		{
			name: "quoted",
			in:   str("1234"),
			out:  "--- \"1234\"\n",
		},
		{
			name: "nested arrays",
			in: ir.OutArray(
				ir.OutInt(1),
				ir.OutArray(str("x"), str("y")),
				ir.OutHash(kv(str("a"), ir.OutInt(1)), kv(str("b"), ir.OutInt(2))),
			),
			out: "---\n- 1\n- - x\n  - y\n- a: 1\n  b: 2\n",
		},
		{
			name: "hash values",
			in: ir.OutHash(
				kv(str("a"), ir.OutArray(ir.OutInt(1), ir.OutInt(2))),
				kv(str("b"), ir.OutHash(kv(str("c"), ir.OutNull()))),
				kv(str("d"), ir.OutArray()),
				kv(str("e"), ir.OutHash()),
			),
			out: "---\na:\n  - 1\n  - 2\nb:\n  c: ~\nd: []\ne: {}\n",
		},
		{
			name: "anchors",
			in: ir.OutHash(
				kv(str("a"), ir.OutAnchored("x", ir.OutArray(ir.OutInt(1)))),
				kv(str("b"), ir.OutAlias("x")),
				kv(ir.OutAlias("x"), str("v")),
			),
			out: "---\na: &x\n  - 1\nb: *x\n*x : v\n",
		},
		{
			name: "anchored root",
			in:   ir.OutAnchored("a", str("v")),
			out:  "--- &a v\n",
		},
		{
			name: "anchored key",
			in:   ir.OutHash(kv(ir.OutAnchored("k", str("key")), ir.OutInt(1))),
			out:  "---\n&k key: 1\n",
		},
		{
			name: "complex key",
			in: ir.OutHash(
				kv(ir.OutHash(kv(str("k"), ir.OutArray(str("v")))), str("x")),
			),
			out: "---\n? k:\n    - v\n: x\n",
		},
		{
			name: "array key",
			in:   ir.OutHash(kv(ir.OutArray(ir.OutInt(1), ir.OutInt(2)), ir.OutArray(str("a")))),
			out:  "---\n? - 1\n  - 2\n: - a\n",
		},
		{
			name: "reals",
			in:   ir.OutArray(ir.OutReal("1.5"), ir.OutReal("12"), ir.OutReal("-.inf")),
			out:  "---\n- 1.5\n- !!float 12\n- -.inf\n",
		},
		{
			name: "bad value",
			in:   ir.OutHash(kv(str("a"), ir.OutBadValue()), kv(ir.OutBadValue(), ir.OutBool(false))),
			out:  "---\na: !!null bad\n!!null bad: false\n",
		},
		{
			name: "bad value as null",
			in:   ir.OutArray(ir.OutBadValue()),
			opts: []EncodeOption{BadValueAsNull(true)},
			out:  "---\n- ~\n",
		},
		{
			name: "indent",
			in:   ir.OutHash(kv(str("a"), ir.OutArray(ir.OutHash(kv(str("b"), ir.OutArray(ir.OutInt(1))))))),
			opts: []EncodeOption{Indent(4)},
			out:  "---\na:\n    - b:\n            - 1\n",
		},
	}
	for _, et := range ets {
		t.Run(et.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(et.in, buf, et.opts...); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(et.out, buf.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	for _, in := range []*ir.Out{
		ir.OutReal("x"),
		ir.OutAnchored("a", ir.OutAnchored("b", ir.OutNull())),
		ir.OutAnchored("a", ir.OutAlias("b")),
		ir.OutHash(kv(ir.OutAnchored("a", ir.OutAnchored("b", ir.OutNull())), ir.OutNull())),
	} {
		err := Encode(in, &bytes.Buffer{})
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%s: error = %v, want ErrEncoding", in.Repr(), err)
		}
	}
}

func TestEncodeDocs(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := EncodeDocs([]*ir.Out{ir.OutInt(1), ir.OutHash(kv(str("a"), str("b")))}, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("--- 1\n---\na: b\n", buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.OutHash(kv(str("a"), ir.OutInt(1)))); got != "---\na: 1" {
		t.Errorf("MustString() = %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()

	buf := &bytes.Buffer{}
	if err := Encode(ir.OutHash(kv(str("a"), ir.OutInt(1))), buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no color codes in %q", buf.String())
	}
}

func roundTrip(t *testing.T, in *ir.Out) {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := Encode(in, buf); err != nil {
		t.Fatalf("encode %s: %v", in.Repr(), err)
	}
	docs, err := parse.Load(buf.Bytes())
	if err != nil {
		t.Fatalf("reload %q: %v", buf.String(), err)
	}
	if len(docs) != 1 {
		t.Fatalf("reload %q: %d documents", buf.String(), len(docs))
	}
	if got := ir.Convert(docs[0]); !got.Equal(in) {
		t.Errorf("%q reloads as %s, want %s", buf.String(), got.Repr(), in.Repr())
	}
}

func TestRoundTrip(t *testing.T) {
	strs := []string{
		"\x1b",
		"x: %",
		"1234",
		"01234",
		" 01234",
		"0x1234",
		" 0x1234",
		"0x123",
		`x: "1234"`,
		`"01234"`,
		"",
		"~",
		"null",
		"true",
		".nan",
		"-",
		"a\nb",
		"tab\t",
		"\u2028",
		"✓",
	}
	for _, s := range strs {
		roundTrip(t, str(s))
		roundTrip(t, ir.OutHash(kv(str(s), str(s))))
	}
	roundTrip(t, ir.OutHash(
		kv(ir.OutHash(kv(str("k"), ir.OutArray(str("v"), ir.OutArray()))), str("x")),
		kv(ir.OutArray(ir.OutInt(1)), ir.OutHash(kv(ir.OutInt(2), ir.OutReal("3.0")))),
		kv(ir.OutNull(), ir.OutBool(true)),
		kv(str(strings.Repeat("k", 2000)), ir.OutInt(-1)),
	))
	roundTrip(t, ir.OutArray(ir.OutReal("12"), ir.OutReal("1e400"), ir.OutBadValue()))
	roundTrip(t, ir.OutHash(
		kv(str("base"), ir.OutAnchored("b", ir.OutHash(kv(str("x"), ir.OutInt(1))))),
		kv(str("ref"), ir.OutAlias("b")),
		kv(ir.OutAnchored("k", ir.OutArray(str("y"))), ir.OutAlias("k")),
	))
	roundTrip(t, ir.OutAnchored("a", str("")))
	roundTrip(t, ir.OutHash(kv(str("e"), ir.OutAnchored("a", str(""))), kv(str("n"), ir.OutAnchored("b", ir.OutNull()))))
}

func TestDoubleRoundTrip(t *testing.T) {
	docs := []string{
		`x: "1234"`,
		`x: "01234"`,
		`"1234"`,
		`" 0x1234"`,
		"a: &x {b: [1, 2.5, c]}\nd: *x\n",
		"? [a, b]\n: {c: !!float 1}\n",
		"- !!int nope\n- !!str 1\n- !custom 2\n",
		"- |\n  block\n  text\n- >\n  folded\n",
	}
	for _, doc := range docs {
		parsed, err := parse.LoadString(doc)
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		buf := &bytes.Buffer{}
		if err := EncodeNode(parsed[0], buf); err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		reparsed, err := parse.Load(buf.Bytes())
		if err != nil {
			t.Fatalf("%q written as %q: %v", doc, buf.String(), err)
		}
		if !reparsed[0].Equal(parsed[0]) {
			t.Errorf("%q written as %q reparses as %s, want %s", doc, buf.String(), reparsed[0].Repr(), parsed[0].Repr())
		}
	}
}
