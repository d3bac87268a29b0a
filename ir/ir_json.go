package ir

import (
	json "github.com/goccy/go-json"
)

type irBase struct {
	Type   Type    `json:"type"`
	Keys   []*Node `json:"keys,omitempty"`
	Values []*Node `json:"values,omitempty"`
	Name   string  `json:"name,omitempty"`
	Child  *Node   `json:"child,omitempty"`
}

// MarshalJSON renders the structure of n, including variant names, for
// debugging.  The payload of an Aliased node is summarized by a resolved
// flag rather than repeated.
func (n *Node) MarshalJSON() ([]byte, error) {
	base := irBase{
		Type:   n.Type,
		Keys:   n.Keys,
		Values: n.Values,
		Name:   n.Name,
	}
	switch n.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: base, String: n.String})
	case RealType:
		type C struct {
			irBase
			Number string `json:"number"`
		}
		return json.Marshal(C{irBase: base, Number: n.Number})
	case IntegerType:
		type C struct {
			irBase
			Int64 int64 `json:"int"`
		}
		return json.Marshal(C{irBase: base, Int64: n.Int64})
	case BooleanType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: base, Bool: n.Bool})
	case AnchoredType:
		base.Child = n.Child
		return json.Marshal(base)
	case AliasedType:
		type C struct {
			irBase
			Resolved bool `json:"resolved"`
		}
		return json.Marshal(C{irBase: base, Resolved: n.Child != nil})
	default:
		return json.Marshal(base)
	}
}
