package ir

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the node, consistent with Compare: nodes
// which compare equal hash equally.
func (n *Node) Hash() uint64 {
	return hashOf(n)
}

func (o *Out) Hash() uint64 {
	return hashOf(o)
}

func hashOf[N tree[N]](n N) uint64 {
	d := xxhash.New()
	writeHash(d, n)
	return d.Sum64()
}

func writeHash[N tree[N]](d *xxhash.Digest, n N) {
	var zero N
	var b [9]byte
	if n == zero {
		b[0] = 0xff
		d.Write(b[:1])
		return
	}
	b[0] = byte(n.typ())
	switch n.typ() {
	case RealType:
		writeHashString(d, b[:], n.num())
	case StringType:
		writeHashString(d, b[:], n.str())
	case IntegerType:
		binary.LittleEndian.PutUint64(b[1:], uint64(n.integer()))
		d.Write(b[:])
	case BooleanType:
		b[1] = 0
		if n.boolean() {
			b[1] = 1
		}
		d.Write(b[:2])
	case ArrayType:
		vs := n.values()
		binary.LittleEndian.PutUint64(b[1:], uint64(len(vs)))
		d.Write(b[:])
		for _, v := range vs {
			writeHash(d, v)
		}
	case HashType:
		ks, vs := n.keys(), n.values()
		binary.LittleEndian.PutUint64(b[1:], uint64(len(ks)))
		d.Write(b[:])
		for i := range ks {
			writeHash(d, ks[i])
			writeHash(d, vs[i])
		}
	case AnchoredType, AliasedType, AliasType:
		writeHashString(d, b[:], n.name())
		writeHash(d, n.child())
	default:
		d.Write(b[:1])
	}
}

func writeHashString(d *xxhash.Digest, b []byte, s string) {
	binary.LittleEndian.PutUint64(b[1:], uint64(len(s)))
	d.Write(b)
	d.WriteString(s)
}

// lookup returns the position of k among keys, or -1.
func lookup[N tree[N]](keys []N, index map[uint64][]int, k N) int {
	if len(keys) == 0 {
		return -1
	}
	for _, i := range index[hashOf(k)] {
		if compare(keys[i], k) == 0 {
			return i
		}
	}
	return -1
}

func reindex[N tree[N]](keys []N) map[uint64][]int {
	res := make(map[uint64][]int, len(keys))
	for i, k := range keys {
		h := hashOf(k)
		res[h] = append(res[h], i)
	}
	return res
}
