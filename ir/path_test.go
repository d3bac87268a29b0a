package ir

import (
	"errors"
	"testing"
)

type pathTest struct {
	Path string
	Res  *Node
}

func TestGetPath(t *testing.T) {
	doc := hash(
		FromString("f"), FromSlice([]*Node{FromInt(0), FromInt(1), FromString("three")}),
		FromString("f[3]"), FromSlice([]*Node{FromInt(7), FromInt(8), FromInt(9)}),
		FromString("o"), hash(FromInt(1), FromString("one")),
	)
	tests := []pathTest{
		{Path: "$", Res: doc},
		{Path: "$.f[2]", Res: FromString("three")},
		{Path: "$.'f[3]'[2]", Res: FromInt(9)},
		{Path: "$.o[1]", Res: FromString("one")},
		{Path: "$.g", Res: BadValue()},
		{Path: "$.g.h[3]", Res: BadValue()},
	}
	for _, pt := range tests {
		t.Run(pt.Path, func(t *testing.T) {
			got, err := doc.GetPath(pt.Path)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(pt.Res) {
				t.Errorf("GetPath(%q) = %s, want %s", pt.Path, got.Repr(), pt.Res.Repr())
			}
		})
	}
}

func TestListPath(t *testing.T) {
	doc := FromSlice([]*Node{
		hash(FromString("name"), FromString("a")),
		hash(FromString("name"), FromString("b"), FromString("sub"), hash(FromString("name"), FromString("c"))),
		FromInt(3),
	})
	tests := []struct {
		path string
		want []string
	}{
		{"$[*].name", []string{"a", "b"}},
		{"$..name", []string{"a", "b", "c"}},
		{"$[1].sub.name", []string{"c"}},
		{"$[4].name", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res, err := doc.ListPath(nil, tt.path)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, n := range res {
				s, _ := n.AsString()
				got = append(got, s)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ListPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ListPath(%q)[%d] = %q, want %q", tt.path, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, p := range []string{"", "a.b", "$.", "$[x]", "$['a"} {
		if _, err := ParsePath(p); !errors.Is(err, ErrPath) {
			t.Errorf("ParsePath(%q) error = %v, want ErrPath", p, err)
		}
	}
	p, err := ParsePath("$.'a.b'[2]")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "$.'a.b'[2]" {
		t.Errorf("String() = %q", got)
	}
}
