// Package ir provides the in-memory representation of loaded YAML documents.
//
// # Overview
//
// A loaded document is a tree of *Node.  The tree is a recursive tagged
// union: the Type field selects the variant and the variant's payload lives
// in the corresponding fields.
//
//   - RealType: Number holds the source text, parsed on demand by AsFloat64
//   - IntegerType: Int64
//   - StringType: String
//   - BooleanType: Bool
//   - NullType, BadValueType: no payload
//   - ArrayType: Values
//   - HashType: Keys and Values, in insertion order
//   - AnchoredType: Name and the anchored Child
//   - AliasedType: Name and, when the anchor was defined before the alias,
//     the anchored node in Child
//
// Reals keep their text so that every node is totally ordered by Compare
// and hashable by Hash, which is what allows any node, including arrays and
// hashes, to be a Hash key.
//
// # Output Trees
//
// Convert maps a *Node tree to an *Out tree for encoding.  The two are
// alike except that an Aliased node becomes a bare AliasType node carrying
// only the alias name.
//
// # Lookups
//
// Get, Index and Lookup never fail.  A missing key, an index out of range or
// a receiver of the wrong shape all give BadValue, and lookups on BadValue
// give BadValue again, so a chain such as
//
//	doc.Get("server").Get("ports").Index(0).Get("name")
//
// can be checked once at the end.  Typed accessors (AsString, AsInt64, ...)
// and predicates (IsNull, IsArray, IsBadValue, ...) look through Anchored
// and resolved Aliased wrappers.
//
// # Scalars
//
// FromPlain and FromTagged implement the core schema: how the text of a
// plain scalar, optionally tagged, becomes a typed node.  Quoted and block
// scalars are always strings and never reach these functions.
package ir
