package ir

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDump(t *testing.T) {
	o := OutHash(
		OutKeyVal{Key: OutString("a"), Val: OutArray(OutInt(1), OutArray(OutBool(true)))},
		OutKeyVal{Key: OutInt(2), Val: OutHash(OutKeyVal{Key: OutNull(), Val: OutAlias("x")})},
	)
	b := &strings.Builder{}
	if err := o.Dump(b); err != nil {
		t.Fatal(err)
	}
	want := `String("a"):
        Integer(1)
            Boolean(true)
Integer(2):
    Null:
        Alias("x")
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("dump (-want +got):\n%s", diff)
	}
}
