package ir

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func hash(kvs ...*Node) *Node {
	res := make([]KeyVal, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		res = append(res, KeyVal{Key: kvs[i], Val: kvs[i+1]})
	}
	return FromKeyVals(res)
}

func TestIndexing(t *testing.T) {
	doc := hash(
		FromString("a"), FromSlice([]*Node{FromInt(1), FromString("two")}),
		FromInt(0), FromString("zero"),
		FromString("n"), Null(),
	)
	tests := []struct {
		name string
		got  *Node
		want *Node
	}{
		{"key", doc.Get("a").Index(1), FromString("two")},
		{"missing key", doc.Get("b"), BadValue()},
		{"out of range", doc.Get("a").Index(2), BadValue()},
		{"negative", doc.Get("a").Index(-1), BadValue()},
		{"wrong receiver", doc.Get("a").Get("x"), BadValue()},
		{"chained on bad value", doc.Get("b").Get("c").Index(3), BadValue()},
		{"integer key", doc.Index(0), FromString("zero")},
		{"scalar index", doc.Get("n").Index(0), BadValue()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %s, want %s", tt.got.Repr(), tt.want.Repr())
			}
		})
	}
	if !doc.Get("b").IsBadValue() {
		t.Error("missing key is not BadValue")
	}
	if !doc.Get("n").IsNull() {
		t.Error("null value is not IsNull")
	}
}

func TestDuplicateKeysLastWriteWins(t *testing.T) {
	h := hash(
		FromString("a"), FromInt(1),
		FromString("b"), FromInt(2),
		FromString("a"), FromInt(3),
	)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if got, _ := h.Get("a").AsInt64(); got != 3 {
		t.Errorf("a = %d, want 3", got)
	}
	var keys []string
	for k := range h.Pairs() {
		s, _ := k.AsString()
		keys = append(keys, s)
	}
	if diff := cmp.Diff([]string{"b", "a"}, keys); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestContainerKeys(t *testing.T) {
	key := hash(FromString("k"), FromSlice([]*Node{FromInt(1), FromInt(2)}))
	h := hash(key, FromString("v"), FromSlice(nil), FromString("empty"))
	same := hash(FromString("k"), FromSlice([]*Node{FromInt(1), FromInt(2)}))
	if got, _ := h.Lookup(same).AsString(); got != "v" {
		t.Errorf("lookup by equal hash key = %q", got)
	}
	if got, _ := h.Lookup(FromSlice([]*Node{})).AsString(); got != "empty" {
		t.Errorf("lookup by empty array key = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	target := hash(FromString("b"), FromInt(4))
	anchored := Anchored("D", target)
	alias := Aliased("D", target)
	dangling := Aliased("X", nil)

	for _, n := range []*Node{anchored, alias, Anchored("E", alias)} {
		if got, ok := n.Get("b").AsInt64(); !ok || got != 4 {
			t.Errorf("%s: b = %d, %v", n.Repr(), got, ok)
		}
		if !n.IsHash() {
			t.Errorf("%s: IsHash() false", n.Repr())
		}
	}
	if dangling.IsNull() || dangling.IsBadValue() || dangling.IsArray() || dangling.IsHash() {
		t.Error("unresolved alias answered true to a predicate")
	}
	if _, ok := dangling.AsString(); ok {
		t.Error("unresolved alias has a string value")
	}
	if !dangling.Get("b").IsBadValue() {
		t.Error("lookup through unresolved alias is not BadValue")
	}
	if !dangling.IsUnresolved() || alias.IsUnresolved() {
		t.Error("IsUnresolved")
	}
}

func TestElems(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), FromInt(2)})
	if got := slices.Collect(arr.Elems()); len(got) != 2 {
		t.Errorf("array Elems() = %d elements", len(got))
	}
	for _, n := range []*Node{BadValue(), hash(FromString("a"), Null()), FromString("s"), Aliased("a", nil)} {
		if got := slices.Collect(n.Elems()); len(got) != 0 {
			t.Errorf("%s: Elems() = %d elements, want 0", n.Repr(), len(got))
		}
	}
	if got := slices.Collect(Anchored("a", arr).Elems()); len(got) != 2 {
		t.Errorf("anchored array Elems() = %d elements", len(got))
	}
}

func TestFloatAccessor(t *testing.T) {
	f, ok := FromReal("1.5").AsFloat64()
	if !ok || f != 1.5 {
		t.Errorf("AsFloat64() = %v, %v", f, ok)
	}
	if _, ok := FromInt(1).AsFloat64(); ok {
		t.Error("Integer answered AsFloat64")
	}
	if f, ok := Aliased("r", FromReal("-2e1")).AsFloat64(); !ok || f != -20 {
		t.Errorf("aliased AsFloat64() = %v, %v", f, ok)
	}
}

func TestIntoIsOwned(t *testing.T) {
	arr := FromSlice([]*Node{FromString("a")})
	owned, ok := arr.IntoArray()
	if !ok {
		t.Fatal("IntoArray")
	}
	owned[0].String = "changed"
	if got, _ := arr.Index(0).AsString(); got != "a" {
		t.Errorf("IntoArray shares elements: %q", got)
	}
	h := hash(FromString("k"), FromString("v"))
	kvs, _ := h.IntoHash()
	kvs[0].Val.String = "changed"
	if got, _ := h.Get("k").AsString(); got != "v" {
		t.Errorf("IntoHash shares values: %q", got)
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		n    *Node
		want bool
	}{
		{FromInt(0), false},
		{FromInt(2), true},
		{FromReal("0.0"), false},
		{FromReal("0.5"), true},
		{FromString(""), false},
		{Null(), false},
		{BadValue(), false},
		{FromSlice([]*Node{Null()}), true},
		{Aliased("a", nil), false},
		{Anchored("a", FromBool(true)), true},
	}
	for _, tt := range tests {
		if got := Truth(tt.n); got != tt.want {
			t.Errorf("Truth(%s) = %v, want %v", tt.n.Repr(), got, tt.want)
		}
	}
}
