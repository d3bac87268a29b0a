package ir

import "slices"

// Out is a node of an output tree, the form handed to the encoder.  It
// mirrors Node except that an alias is a bare Alias carrying only its name.
type Out struct {
	Type Type

	String string
	Number string
	Int64  int64
	Bool   bool

	Keys   []*Out
	Values []*Out

	// Name is the anchor name of an Anchored node or the name of an Alias.
	// Child is set only for Anchored.
	Name  string
	Child *Out

	index map[uint64][]int
}

type OutKeyVal struct {
	Key *Out
	Val *Out
}

// Convert maps an input tree to an output tree.  It never fails: every
// Aliased node becomes an Alias of the same name, whether or not it was
// resolved, and everything else maps to the same variant.
func Convert(n *Node) *Out {
	switch n.Type {
	case ArrayType:
		res := &Out{Type: ArrayType, Values: make([]*Out, len(n.Values))}
		for i, v := range n.Values {
			res.Values[i] = Convert(v)
		}
		return res
	case HashType:
		res := &Out{
			Type:   HashType,
			Keys:   make([]*Out, len(n.Keys)),
			Values: make([]*Out, len(n.Values)),
		}
		for i := range n.Keys {
			res.Keys[i] = Convert(n.Keys[i])
			res.Values[i] = Convert(n.Values[i])
		}
		res.index = reindex(res.Keys)
		return res
	case AnchoredType:
		return OutAnchored(n.Name, Convert(n.Child))
	case AliasedType:
		return OutAlias(n.Name)
	default:
		return &Out{
			Type:   n.Type,
			String: n.String,
			Number: n.Number,
			Int64:  n.Int64,
			Bool:   n.Bool,
		}
	}
}

// ConvertAll converts each document of a load.
func ConvertAll(docs []*Node) []*Out {
	res := make([]*Out, len(docs))
	for i, d := range docs {
		res[i] = Convert(d)
	}
	return res
}

func OutNull() *Out { return &Out{Type: NullType} }
func OutBadValue() *Out { return &Out{Type: BadValueType} }
func OutString(v string) *Out { return &Out{Type: StringType, String: v} }
func OutInt(v int64) *Out { return &Out{Type: IntegerType, Int64: v} }
func OutBool(v bool) *Out { return &Out{Type: BooleanType, Bool: v} }
func OutReal(text string) *Out { return &Out{Type: RealType, Number: text} }
func OutAlias(name string) *Out { return &Out{Type: AliasType, Name: name} }
func OutArray(vs ...*Out) *Out { return &Out{Type: ArrayType, Values: slices.Clip(vs)} }
func OutAnchored(name string, child *Out) *Out {
	return &Out{Type: AnchoredType, Name: name, Child: child}
}

// OutHash returns a Hash of kvs, with the same duplicate key handling as
// FromKeyVals.
func OutHash(kvs ...OutKeyVal) *Out {
	res := &Out{Type: HashType, Keys: []*Out{}, Values: []*Out{}}
	for _, kv := range kvs {
		if i := lookup(res.Keys, res.index, kv.Key); i >= 0 {
			res.Keys = slices.Delete(res.Keys, i, i+1)
			res.Values = slices.Delete(res.Values, i, i+1)
		}
		res.Keys = append(res.Keys, kv.Key)
		res.Values = append(res.Values, kv.Val)
		res.index = reindex(res.Keys)
	}
	return res
}

// Resolve removes Anchored wrappers.  It returns nil for an Alias.
func (o *Out) Resolve() *Out {
	r, _ := resolve(o)
	return r
}
