package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes of different types order by type, in the order the Type constants
// are declared.  Reals compare by their text, so the ordering is total even
// for NaN.  Containers compare element by element (key then value for a
// Hash) and then by length.  Wrappers compare by name, then by child.
func Compare(a, b *Node) int {
	return compare(a, b)
}

// CompareOut is Compare for output trees.
func CompareOut(a, b *Out) int {
	return compare(a, b)
}

// Equal reports whether a and b are structurally equal.
func (n *Node) Equal(o *Node) bool {
	return compare(n, o) == 0
}

func (o *Out) Equal(p *Out) bool {
	return compare(o, p) == 0
}

func compare[N tree[N]](a, b N) int {
	var zero N
	if a == b {
		return 0
	}
	if a == zero {
		return -1
	}
	if b == zero {
		return 1
	}
	if c := cmp.Compare(a.typ(), b.typ()); c != 0 {
		return c
	}
	switch a.typ() {
	case RealType:
		return strings.Compare(a.num(), b.num())
	case IntegerType:
		return cmp.Compare(a.integer(), b.integer())
	case StringType:
		return strings.Compare(a.str(), b.str())
	case BooleanType:
		if a.boolean() == b.boolean() {
			return 0
		}
		if !a.boolean() {
			return -1
		}
		return 1
	case ArrayType:
		return compareSeqs(a.values(), b.values())
	case HashType:
		return compareHashes(a, b)
	case AnchoredType, AliasedType, AliasType:
		if c := strings.Compare(a.name(), b.name()); c != 0 {
			return c
		}
		return compare(a.child(), b.child())
	}
	return 0
}

func compareSeqs[N tree[N]](a, b []N) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareHashes[N tree[N]](a, b N) int {
	ak, bk := a.keys(), b.keys()
	av, bv := a.values(), b.values()
	n := min(len(ak), len(bk))
	for i := range n {
		if c := compare(ak[i], bk[i]); c != 0 {
			return c
		}
		if c := compare(av[i], bv[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ak), len(bk))
}
