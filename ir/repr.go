package ir

import (
	"strconv"
	"strings"
)

// Repr returns a one line structural rendering of n, such as
//
//	Hash{String("a"): Array[Integer(1), Real("2.5")]}
func (n *Node) Repr() string {
	b := &strings.Builder{}
	writeRepr(b, n)
	return b.String()
}

func (o *Out) Repr() string {
	b := &strings.Builder{}
	writeRepr(b, o)
	return b.String()
}

func writeRepr[N tree[N]](b *strings.Builder, n N) {
	var zero N
	if n == zero {
		b.WriteString("None")
		return
	}
	t := n.typ()
	b.WriteString(t.String())
	switch t {
	case RealType:
		b.WriteString("(" + strconv.Quote(n.num()) + ")")
	case StringType:
		b.WriteString("(" + strconv.Quote(n.str()) + ")")
	case IntegerType:
		b.WriteString("(" + strconv.FormatInt(n.integer(), 10) + ")")
	case BooleanType:
		b.WriteString("(" + strconv.FormatBool(n.boolean()) + ")")
	case ArrayType:
		b.WriteByte('[')
		for i, v := range n.values() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRepr(b, v)
		}
		b.WriteByte(']')
	case HashType:
		b.WriteByte('{')
		vs := n.values()
		for i, k := range n.keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRepr(b, k)
			b.WriteString(": ")
			writeRepr(b, vs[i])
		}
		b.WriteByte('}')
	case AnchoredType, AliasedType:
		b.WriteString("(" + strconv.Quote(n.name()) + ", ")
		writeRepr(b, n.child())
		b.WriteByte(')')
	case AliasType:
		b.WriteString("(" + strconv.Quote(n.name()) + ")")
	}
}
