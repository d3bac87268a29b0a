package ir

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented listing of o, four spaces per level.  Array
// elements are listed one level deeper than their array, hash entries as a
// "key:" line followed by the value one level deeper, and every other node
// as its Repr.
func (o *Out) Dump(w io.Writer) error {
	return dump(w, o, 0)
}

func dump(w io.Writer, o *Out, indent int) error {
	pre := strings.Repeat("    ", indent)
	switch o.Type {
	case ArrayType:
		for _, v := range o.Values {
			if err := dump(w, v, indent+1); err != nil {
				return err
			}
		}
		return nil
	case HashType:
		for i, k := range o.Keys {
			if _, err := fmt.Fprintf(w, "%s%s:\n", pre, k.Repr()); err != nil {
				return err
			}
			if err := dump(w, o.Values[i], indent+1); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%s%s\n", pre, o.Repr())
	return err
}
