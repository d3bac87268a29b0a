package ir

import "iter"

// Get returns the value stored under the String key k.  A missing key, or
// a receiver which is not a Hash, yields BadValue.
func (n *Node) Get(k string) *Node {
	return n.Lookup(FromString(k))
}

// Index returns element i of an Array.  On a Hash it returns the value
// stored under the Integer key i.  Anything else, including an out of range
// index, yields BadValue.
func (n *Node) Index(i int) *Node {
	r, ok := resolve(n)
	if !ok {
		return badValue
	}
	switch r.Type {
	case ArrayType:
		if i < 0 || i >= len(r.Values) {
			return badValue
		}
		return r.Values[i]
	case HashType:
		return r.Lookup(FromInt(int64(i)))
	default:
		return badValue
	}
}

// Lookup returns the value stored under key k, which may be any node.
func (n *Node) Lookup(k *Node) *Node {
	r, ok := n.as(HashType)
	if !ok {
		return badValue
	}
	i := lookup(r.Keys, r.index, k)
	if i < 0 {
		return badValue
	}
	return r.Values[i]
}

// Len returns the number of elements of an Array or entries of a Hash, and
// 0 for anything else.
func (n *Node) Len() int {
	r, ok := resolve(n)
	if !ok {
		return 0
	}
	switch r.Type {
	case ArrayType, HashType:
		return len(r.Values)
	}
	return 0
}

// Elems iterates the elements of an Array.  Every other node, including a
// Hash, yields nothing.
func (n *Node) Elems() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		vs, _ := n.AsArray()
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

// Pairs iterates the entries of a Hash in insertion order.
func (n *Node) Pairs() iter.Seq2[*Node, *Node] {
	return func(yield func(*Node, *Node) bool) {
		r, ok := n.as(HashType)
		if !ok {
			return
		}
		for i, k := range r.Keys {
			if !yield(k, r.Values[i]) {
				return
			}
		}
	}
}
