package stream

import (
	"github.com/signadot/yamlfmt/debug"
	"github.com/signadot/yamlfmt/ir"
)

// Anchors maps anchor names to the nodes they were defined on.  A name
// defined again refers to its newest node from then on.
type Anchors struct {
	m map[string]*ir.Node
}

func NewAnchors() *Anchors {
	return &Anchors{m: map[string]*ir.Node{}}
}

func (a *Anchors) Set(name string, node *ir.Node) {
	_, redefined := a.m[name]
	a.m[name] = node
	if debug.Anchors() {
		debug.Logf("anchor &%s = %v (redefined %t) table %s", name, node, redefined, a.Table())
	}
}

// Table maps each defined anchor name to the type of its node.
func (a *Anchors) Table() map[string]any {
	res := make(map[string]any, len(a.m))
	for name, node := range a.m {
		res[name] = node.Type.String()
	}
	return res
}

// Get returns the node anchored as name, or nil.
func (a *Anchors) Get(name string) *ir.Node {
	return a.m[name]
}

func (a *Anchors) Len() int {
	return len(a.m)
}

// Reset forgets every anchor.
func (a *Anchors) Reset() {
	clear(a.m)
}
