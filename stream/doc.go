// Package stream turns structural YAML events into document trees.
//
// A Source (see the source/ packages) reads YAML text and produces a flat
// sequence of events:
//
//	+DOC
//	+MAP &D
//	=VAL :b
//	=VAL :4
//	-MAP
//	-DOC
//
// A Builder consumes the events and produces one *ir.Node per document,
// resolving scalar types and aliases as it goes.  Build drives a Source
// through a Builder:
//
//	docs, err := stream.Build(src)
//
// # Anchors
//
// An alias refers to the anchor with its name at the time the alias is
// read.  An alias read before its anchor's node is complete, including an
// alias inside the node it names, stays unresolved: it becomes an Aliased
// node with no payload.  Anchors remain defined for the later documents of
// the same input unless ScopeAnchors is set.
//
// # Errors
//
// Sources report malformed input, including nesting beyond the configured
// depth, as an *Error carrying a position.  A Builder given events that no
// Source produces panics with a *ProtocolError.
package stream
