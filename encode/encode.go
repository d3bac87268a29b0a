package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/yamlfmt/debug"
	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/token"
)

// maxImplicitKey is the longest key YAML readers accept without the
// explicit "? " indicator.
const maxImplicitKey = 1024

type EncState struct {
	level          int
	indent         int
	badValueAsNull bool

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w as a single document.
func Encode(node *ir.Out, w io.Writer, opts ...EncodeOption) error {
	return encodeDoc(node, w, newEncState(opts))
}

// EncodeDocs writes each of docs to w, each starting with "---".
func EncodeDocs(docs []*ir.Out, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, doc := range docs {
		if err := encodeDoc(doc, w, es); err != nil {
			return err
		}
	}
	return nil
}

// EncodeNode converts an input tree and writes it.
func EncodeNode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return Encode(ir.Convert(node), w, opts...)
}

func encodeDoc(node *ir.Out, w io.Writer, es *EncState) error {
	if debug.Encode() {
		debug.Logf("encode document %v", node)
	}
	es.level = -1
	if err := writeString(w, applyColor(es, node.Type, SepColor, "---")); err != nil {
		return err
	}
	if err := encodeVal(node, false, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.level <= 0 {
		return writeString(w, "\n")
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.level*es.indent))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func isBlock(node *ir.Out) bool {
	switch node.Type {
	case ir.ArrayType:
		return len(node.Values) != 0
	case ir.HashType:
		return len(node.Keys) != 0
	}
	return false
}

func anchoredChild(node *ir.Out) (*ir.Out, error) {
	child := node.Child
	if child == nil {
		return ir.OutNull(), nil
	}
	switch child.Type {
	case ir.AnchoredType:
		return nil, fmt.Errorf("%w: node with anchors %q and %q", ErrEncoding, node.Name, child.Name)
	case ir.AliasType:
		return nil, fmt.Errorf("%w: anchor %q on alias %q", ErrEncoding, node.Name, child.Name)
	}
	return child, nil
}

func writeAnchor(w io.Writer, es *EncState, node *ir.Out, t ir.Type) error {
	return writeString(w, applyColor(es, t, AnchorColor, "&"+node.Name))
}

// encodeVal writes node following an indicator ("---", "-", "?" or ":").
// Non-empty containers start on a new line unless inline is set, in which
// case they start on the indicator's line.
func encodeVal(node *ir.Out, inline bool, w io.Writer, es *EncState) error {
	if node.Type == ir.AnchoredType {
		child, err := anchoredChild(node)
		if err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := writeAnchor(w, es, node, child.Type); err != nil {
			return err
		}
		if isBlock(child) {
			return encodeBlock(child, w, es)
		}
		node = child
	} else if isBlock(node) && !inline {
		return encodeBlock(node, w, es)
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	return encodeNode(node, w, es)
}

// encodeBlock writes a container on a new line, one level deeper.
func encodeBlock(node *ir.Out, w io.Writer, es *EncState) error {
	es.level++
	err := writeNL(w, es)
	es.level--
	if err != nil {
		return err
	}
	return encodeNode(node, w, es)
}

func encodeNode(node *ir.Out, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.HashType:
		return encodeHash(node, w, es)
	case ir.AliasType:
		return writeString(w, applyColor(es, ir.AliasType, ValueColor, "*"+node.Name))
	case ir.AnchoredType:
		return fmt.Errorf("%w: misplaced anchor %q", ErrEncoding, node.Name)
	}
	tag, v, err := scalar(node, es)
	if err != nil {
		return err
	}
	if tag != "" {
		if err := writeString(w, applyColor(es, node.Type, TagColor, tag)+" "); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, node.Type, ValueColor, v))
}

// scalar returns the text of a scalar node and the tag it needs, if any.
func scalar(node *ir.Out, es *EncState) (string, string, error) {
	switch node.Type {
	case ir.StringType:
		return "", token.Scalar(node.String), nil
	case ir.IntegerType:
		return "", strconv.FormatInt(node.Int64, 10), nil
	case ir.RealType:
		if ir.FromPlain(node.Number).Type == ir.RealType {
			return "", node.Number, nil
		}
		if _, ok := ir.ParseFloat(node.Number); ok {
			return "!!float", node.Number, nil
		}
		return "", "", fmt.Errorf("%w: real %q is not a number", ErrEncoding, node.Number)
	case ir.BooleanType:
		return "", strconv.FormatBool(node.Bool), nil
	case ir.NullType:
		return "", "~", nil
	case ir.BadValueType:
		if es.badValueAsNull {
			return "", "~", nil
		}
		return "!!null", "bad", nil
	}
	return "", "", fmt.Errorf("%w: unexpected %s", ErrEncoding, node.Type)
}

// Array encoding

func encodeArray(node *ir.Out, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "[]"))
	}
	es.level++
	defer func() { es.level-- }()
	for i, v := range node.Values {
		if i > 0 {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "-")); err != nil {
			return err
		}
		if err := encodeVal(v, true, w, es); err != nil {
			return err
		}
	}
	return nil
}

// Hash encoding

func encodeHash(node *ir.Out, w io.Writer, es *EncState) error {
	if len(node.Keys) == 0 {
		return writeString(w, applyColor(es, ir.HashType, SepColor, "{}"))
	}
	es.level++
	defer func() { es.level-- }()
	sep := applyColor(es, ir.HashType, SepColor, ":")
	for i, k := range node.Keys {
		v := node.Values[i]
		if i > 0 {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		key, err := implicitKey(k, es)
		if err != nil {
			return err
		}
		if key == "" {
			if err := encodeExplicitKey(k, v, w, es); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, key+sep); err != nil {
			return err
		}
		if err := encodeVal(v, false, w, es); err != nil {
			return err
		}
	}
	return nil
}

// implicitKey returns the text of k written as an implicit key, or "" if
// k needs the explicit form: containers, anchored containers and overlong
// scalars.
func implicitKey(k *ir.Out, es *EncState) (string, error) {
	prefix := ""
	if k.Type == ir.AnchoredType {
		child, err := anchoredChild(k)
		if err != nil {
			return "", err
		}
		prefix = applyColor(es, child.Type, AnchorColor, "&"+k.Name) + " "
		k = child
	}
	switch k.Type {
	case ir.ArrayType, ir.HashType:
		return "", nil
	case ir.AliasType:
		// "*a:" would read as an alias named "a:"
		return applyColor(es, ir.AliasType, FieldColor, "*"+k.Name) + " ", nil
	}
	tag, v, err := scalar(k, es)
	if err != nil {
		return "", err
	}
	if len(tag)+len(v) >= maxImplicitKey {
		return "", nil
	}
	if tag != "" {
		prefix += applyColor(es, k.Type, TagColor, tag) + " "
	}
	return prefix + applyColor(es, k.Type, FieldColor, v), nil
}

func encodeExplicitKey(k, v *ir.Out, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.HashType, SepColor, "?")); err != nil {
		return err
	}
	if err := encodeVal(k, true, w, es); err != nil {
		return err
	}
	if err := writeNL(w, es); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, ir.HashType, SepColor, ":")); err != nil {
		return err
	}
	return encodeVal(v, true, w, es)
}
