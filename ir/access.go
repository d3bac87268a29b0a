package ir

// Typed accessors and predicates look through Anchored and resolved Aliased
// wrappers and answer for the wrapped node.  An Aliased node without a
// payload has no value: accessors report false and predicates are false.

// Resolve returns the node n stands for after removing Anchored and
// Aliased wrappers, or nil for an unresolved alias.
func (n *Node) Resolve() *Node {
	r, _ := resolve(n)
	return r
}

func (n *Node) as(t Type) (*Node, bool) {
	r, ok := resolve(n)
	if !ok || r.Type != t {
		return nil, false
	}
	return r, true
}

func (n *Node) AsBool() (bool, bool) {
	r, ok := n.as(BooleanType)
	if !ok {
		return false, false
	}
	return r.Bool, true
}

func (n *Node) AsInt64() (int64, bool) {
	r, ok := n.as(IntegerType)
	if !ok {
		return 0, false
	}
	return r.Int64, true
}

// AsFloat64 parses the text of a Real.
func (n *Node) AsFloat64() (float64, bool) {
	r, ok := n.as(RealType)
	if !ok {
		return 0, false
	}
	return ParseFloat(r.Number)
}

func (n *Node) AsString() (string, bool) {
	r, ok := n.as(StringType)
	if !ok {
		return "", false
	}
	return r.String, true
}

// AsArray returns the elements of an Array.  The slice is shared with the
// node and must not be modified.
func (n *Node) AsArray() ([]*Node, bool) {
	r, ok := n.as(ArrayType)
	if !ok {
		return nil, false
	}
	return r.Values, true
}

// AsHash returns the entries of a Hash in insertion order.
func (n *Node) AsHash() ([]KeyVal, bool) {
	r, ok := n.as(HashType)
	if !ok {
		return nil, false
	}
	return r.KeyVals(), true
}

// IntoArray is AsArray returning a deep copy owned by the caller.
func (n *Node) IntoArray() ([]*Node, bool) {
	vs, ok := n.AsArray()
	if !ok {
		return nil, false
	}
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = v.Clone()
	}
	return res, true
}

// IntoHash is AsHash returning a deep copy owned by the caller.
func (n *Node) IntoHash() ([]KeyVal, bool) {
	kvs, ok := n.AsHash()
	if !ok {
		return nil, false
	}
	for i := range kvs {
		kvs[i].Key = kvs[i].Key.Clone()
		kvs[i].Val = kvs[i].Val.Clone()
	}
	return kvs, true
}

func (n *Node) is(t Type) bool {
	_, ok := n.as(t)
	return ok
}

func (n *Node) IsNull() bool { return n.is(NullType) }
func (n *Node) IsArray() bool { return n.is(ArrayType) }
func (n *Node) IsHash() bool { return n.is(HashType) }
func (n *Node) IsString() bool { return n.is(StringType) }
func (n *Node) IsBadValue() bool { return n.is(BadValueType) }

// IsUnresolved reports whether n is an alias, possibly anchored, whose
// anchor was not defined when it was read.
func (n *Node) IsUnresolved() bool {
	_, ok := resolve(n)
	return !ok
}
