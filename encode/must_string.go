package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/yamlfmt/ir"
)

func MustString(node *ir.Out) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
