package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamlfmt/ir"
)

func TestAnchorsTable(t *testing.T) {
	a := NewAnchors()
	a.Set("x", ir.FromInt(1))
	a.Set("y", ir.FromString("v"))
	a.Set("x", ir.FromSlice(nil))
	want := map[string]any{"x": "Array", "y": "String"}
	if diff := cmp.Diff(want, a.Table()); diff != "" {
		t.Errorf("table (-want +got):\n%s", diff)
	}
	a.Reset()
	if a.Len() != 0 || len(a.Table()) != 0 {
		t.Errorf("reset left %d anchors", a.Len())
	}
}
