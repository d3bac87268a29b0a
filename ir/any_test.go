package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	o := OutHash(
		OutKeyVal{Key: OutString("a"), Val: OutArray(OutInt(1), OutReal("1.5"), OutBool(true), OutNull())},
		OutKeyVal{Key: OutInt(2), Val: OutAnchored("x", OutString("v"))},
		OutKeyVal{Key: OutString("r"), Val: OutAlias("x")},
		OutKeyVal{Key: OutString("bad"), Val: OutBadValue()},
	)
	want := map[string]any{
		"a":          []any{int64(1), 1.5, true, nil},
		"Integer(2)": "v",
		"r":          "*x",
		"bad":        nil,
	}
	if diff := cmp.Diff(want, o.ToAny()); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	got, err := FromAny(map[string]any{
		"b": 1,
		"a": []any{2.0, "s", nil, math.Inf(-1), 1e21},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := OutHash(
		OutKeyVal{Key: OutString("a"), Val: OutArray(OutReal("2.0"), OutString("s"), OutNull(), OutReal("-.inf"), OutReal("1e+21"))},
		OutKeyVal{Key: OutString("b"), Val: OutInt(1)},
	)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.Repr(), want.Repr())
	}
	for _, k := range got.Keys {
		if k.Type != StringType {
			t.Errorf("key %s", k.Repr())
		}
	}
	if got.Keys[0].String != "a" {
		t.Errorf("keys not sorted: %s", got.Repr())
	}

	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrConvert) {
		t.Errorf("error = %v, want ErrConvert", err)
	}
}
