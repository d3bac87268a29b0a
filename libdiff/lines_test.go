package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/yamlfmt/ir"
)

func TestLines(t *testing.T) {
	edits := Lines("a\nb\nc\n", "a\nx\nc\n")
	want := []Edit{
		{Op: Equal, Lines: []string{"a"}},
		{Op: Delete, Lines: []string{"b"}},
		{Op: Insert, Lines: []string{"x"}},
		{Op: Equal, Lines: []string{"c"}},
	}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Errorf("edits (-want +got):\n%s", diff)
	}
	if !Changed(edits) {
		t.Error("Changed() = false")
	}
	if got := Format(edits, false); got != " a\n-b\n+x\n c\n" {
		t.Errorf("Format() = %q", got)
	}
	if Changed(Lines("same\n", "same\n")) {
		t.Error("equal texts changed")
	}
}

func TestTrees(t *testing.T) {
	from := ir.OutArray(ir.OutString("1"), ir.OutInt(2))
	to := ir.OutArray(ir.OutInt(1), ir.OutInt(2))
	got := Format(Trees(from, to), false)
	want := "-    String(\"1\")\n+    Integer(1)\n     Integer(2)\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
}
