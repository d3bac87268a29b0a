package ir

// tree is the view shared by *Node and *Out, so ordering, hashing and
// wrapper resolution are written once for both trees.
type tree[N any] interface {
	comparable
	typ() Type
	str() string
	num() string
	integer() int64
	boolean() bool
	keys() []N
	values() []N
	name() string
	child() N
}

func (n *Node) typ() Type { return n.Type }
func (n *Node) str() string { return n.String }
func (n *Node) num() string { return n.Number }
func (n *Node) integer() int64 { return n.Int64 }
func (n *Node) boolean() bool { return n.Bool }
func (n *Node) keys() []*Node { return n.Keys }
func (n *Node) values() []*Node { return n.Values }
func (n *Node) name() string { return n.Name }
func (n *Node) child() *Node { return n.Child }

func (o *Out) typ() Type { return o.Type }
func (o *Out) str() string { return o.String }
func (o *Out) num() string { return o.Number }
func (o *Out) integer() int64 { return o.Int64 }
func (o *Out) boolean() bool { return o.Bool }
func (o *Out) keys() []*Out { return o.Keys }
func (o *Out) values() []*Out { return o.Values }
func (o *Out) name() string { return o.Name }
func (o *Out) child() *Out { return o.Child }

// resolve follows Anchored and Aliased wrappers down to the node they
// stand for.  It reports false for an alias with no payload.
func resolve[N tree[N]](n N) (N, bool) {
	var zero N
	for n != zero {
		switch n.typ() {
		case AnchoredType, AliasedType, AliasType:
			n = n.child()
		default:
			return n, true
		}
	}
	return zero, false
}
