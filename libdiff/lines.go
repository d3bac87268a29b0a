package libdiff

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/yamlfmt/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Edit is a run of lines sharing one operation.
type Edit struct {
	Op    Op
	Lines []string
}

// Lines returns the line edits turning from into to.
func Lines(from, to string) []Edit {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		e := Edit{Lines: splitLines(diff.Text)}
		switch diff.Type {
		case diffpatch.DiffDelete:
			e.Op = Delete
		case diffpatch.DiffInsert:
			e.Op = Insert
		}
		res = append(res, e)
	}
	return res
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Trees returns the line edits between the Dump listings of from and to.
func Trees(from, to *ir.Out) []Edit {
	a, b := &strings.Builder{}, &strings.Builder{}
	// writes to a strings.Builder do not fail
	_ = from.Dump(a)
	_ = to.Dump(b)
	return Lines(a.String(), b.String())
}

// Changed reports whether edits contain anything but Equal runs.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return true
		}
	}
	return false
}

// Format renders edits with a one character prefix per line, colored when
// colors is set.
func Format(edits []Edit, colors bool) string {
	b := &strings.Builder{}
	for _, e := range edits {
		for _, ln := range e.Lines {
			ln = e.Op.String() + ln
			if colors {
				switch e.Op {
				case Delete:
					ln = color.RedString("%s", ln)
				case Insert:
					ln = color.GreenString("%s", ln)
				}
			}
			b.WriteString(ln)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
