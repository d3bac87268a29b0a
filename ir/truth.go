package ir

// Truth reports whether node holds a non-zero value: a non-empty container
// or string, a non-zero number, or true.  Null, BadValue and unresolved
// aliases are false.
func Truth(node *Node) bool {
	r, ok := resolve(node)
	if !ok {
		return false
	}
	switch r.Type {
	case HashType, ArrayType:
		return len(r.Values) != 0
	case StringType:
		return r.String != ""
	case IntegerType:
		return r.Int64 != 0
	case RealType:
		f, ok := ParseFloat(r.Number)
		return ok && f != 0
	case BooleanType:
		return r.Bool
	case NullType, BadValueType:
		return false
	default:
		panic("type")
	}
}
