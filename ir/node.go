package ir

import "slices"

// Node is a loaded YAML node.
//
// A Node is immutable once constructed: the builder creates each node at the
// event that closes it, and nothing modifies it afterwards.  Shared subtrees
// (the payload of an Aliased node) are therefore safe to hand out without
// copying.
type Node struct {
	Type Type

	// String holds the value of a String.
	String string
	// Number holds the source text of a Real.
	Number string
	Int64  int64
	Bool   bool

	// Values holds the elements of an Array, or the values of a Hash with
	// Keys holding the corresponding keys in insertion order.
	Keys   []*Node
	Values []*Node

	// Name is the anchor name of an Anchored node or the alias name of an
	// Aliased node.  Child is the anchored node, or the resolved payload of
	// an alias (nil when the alias was unresolved).
	Name  string
	Child *Node

	index map[uint64][]int
}

// KeyVal is one entry of a Hash.
type KeyVal struct {
	Key *Node
	Val *Node
}

var (
	badValue = &Node{Type: BadValueType}
)

// BadValue returns the shared BadValue node.
func BadValue() *Node {
	return badValue
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BooleanType, Bool: v}
}

// FromReal returns a Real carrying text.  The text is parsed on demand by
// AsFloat64.
func FromReal(text string) *Node {
	return &Node{Type: RealType, Number: text}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: slices.Clip(vs)}
}

// FromKeyVals returns a Hash of kvs in order.  A key equal to an earlier key
// replaces the earlier entry and takes the later position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   HashType,
		Keys:   make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.set(kv.Key, kv.Val)
	}
	return res
}

func FromMap(m map[string]*Node) *Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: FromString(k), Val: m[k]}
	}
	return FromKeyVals(kvs)
}

// Anchored wraps child as the definition of anchor name.
func Anchored(name string, child *Node) *Node {
	return &Node{Type: AnchoredType, Name: name, Child: child}
}

// Aliased returns a reference to anchor name.  target is the node the
// anchor referred to when the alias was read, or nil if the anchor was not
// defined at that point.
func Aliased(name string, target *Node) *Node {
	return &Node{Type: AliasedType, Name: name, Child: target}
}

func (n *Node) set(k, v *Node) {
	if i := lookup(n.Keys, n.index, k); i >= 0 {
		n.Keys = slices.Delete(n.Keys, i, i+1)
		n.Values = slices.Delete(n.Values, i, i+1)
		n.Keys = append(n.Keys, k)
		n.Values = append(n.Values, v)
		n.index = reindex(n.Keys)
		return
	}
	n.Keys = append(n.Keys, k)
	n.Values = append(n.Values, v)
	if n.index == nil {
		n.index = make(map[uint64][]int, cap(n.Keys))
	}
	h := hashOf(k)
	n.index[h] = append(n.index[h], len(n.Keys)-1)
}

// KeyVals returns the entries of a Hash in order, or nil for any other node.
// Wrappers are not resolved.
func (n *Node) KeyVals() []KeyVal {
	if n.Type != HashType {
		return nil
	}
	res := make([]KeyVal, len(n.Keys))
	for i := range n.Keys {
		res[i] = KeyVal{Key: n.Keys[i], Val: n.Values[i]}
	}
	return res
}

// Clone returns a deep copy of n.  The payload of an Aliased node is cloned
// as well, so the result shares nothing with n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n == badValue {
		return n
	}
	res := &Node{
		Type:   n.Type,
		String: n.String,
		Number: n.Number,
		Int64:  n.Int64,
		Bool:   n.Bool,
		Name:   n.Name,
		Child:  n.Child.Clone(),
	}
	if n.Keys != nil {
		res.Keys = make([]*Node, len(n.Keys))
		for i, k := range n.Keys {
			res.Keys[i] = k.Clone()
		}
		res.index = reindex(res.Keys)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit calls f on n and its descendants, depth first, with isPost false
// before and true after the children.  Returning false from a pre-order call
// skips the children.  The payload of an Aliased node is not visited.
func (n *Node) Visit(f func(node *Node, isPost bool) (bool, error)) error {
	descend, err := f(n, false)
	if err != nil {
		return err
	}
	if descend {
		for i, v := range n.Values {
			if n.Type == HashType {
				if err := n.Keys[i].Visit(f); err != nil {
					return err
				}
			}
			if err := v.Visit(f); err != nil {
				return err
			}
		}
		if n.Type == AnchoredType && n.Child != nil {
			if err := n.Child.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}
