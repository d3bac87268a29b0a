// Package yamlfmt loads YAML streams into document trees and writes them
// back.
//
//	docs, err := yamlfmt.LoadString("a: &x [1, 2]\nb: *x\n")
//	if err != nil {
//	    return err
//	}
//	text, err := yamlfmt.Serialize(yamlfmt.Convert(docs[0]))
//
// Loading resolves scalar types with the YAML core schema and aliases
// against their anchors; see the ir, stream and encode packages for the
// details.
package yamlfmt

import (
	"bytes"
	"io"

	"github.com/signadot/yamlfmt/encode"
	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/parse"
)

// Load returns one tree per document of d.
func Load(d []byte, opts ...parse.ParseOption) ([]*ir.Node, error) {
	return parse.Load(d, opts...)
}

func LoadString(s string, opts ...parse.ParseOption) ([]*ir.Node, error) {
	return parse.LoadString(s, opts...)
}

// Convert returns the output tree of doc, in which every alias is a bare
// name.
func Convert(doc *ir.Node) *ir.Out {
	return ir.Convert(doc)
}

// Serialize writes root and more as consecutive documents.
func Serialize(root *ir.Out, more ...*ir.Out) (string, error) {
	buf := &bytes.Buffer{}
	docs := append([]*ir.Out{root}, more...)
	if err := encode.EncodeDocs(docs, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Dump writes the listing of each document, see (*ir.Out).Dump, after a
// "---" line.
func Dump(w io.Writer, docs ...*ir.Out) error {
	for _, doc := range docs {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
		if err := doc.Dump(w); err != nil {
			return err
		}
	}
	return nil
}
