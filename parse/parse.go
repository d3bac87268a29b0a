package parse

import (
	"errors"
	"io"

	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/source/goyaml"
	"github.com/signadot/yamlfmt/source/yamlv3"
	"github.com/signadot/yamlfmt/stream"
)

func options(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{source: SourceYAMLv3}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

// NewSource returns the event source selected by opts reading d.
func NewSource(d []byte, opts ...ParseOption) (stream.Source, error) {
	pOpts := options(opts)
	return newSource(d, pOpts)
}

func newSource(d []byte, pOpts *parseOpts) (stream.Source, error) {
	switch pOpts.source {
	case SourceYAMLv3:
		return yamlv3.NewDecoderBytes(d, yamlv3.MaxDepth(pOpts.maxDepth)), nil
	case SourceGoYAML:
		return goyaml.NewDecoderBytes(d, goyaml.MaxDepth(pOpts.maxDepth)), nil
	}
	return nil, pOpts.source.Valid()
}

// Load parses every document in d.  Either all documents are returned or
// an error; a failure in a later document discards the earlier ones.
func Load(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := options(opts)
	src, err := newSource(d, pOpts)
	if err != nil {
		return nil, err
	}
	return stream.Build(src, pOpts.BuildOpts()...)
}

func LoadString(s string, opts ...ParseOption) ([]*ir.Node, error) {
	return Load([]byte(s), opts...)
}

// Events returns the validated event sequence of d.  On failure it
// returns the events read before the error along with it.
func Events(d []byte, opts ...ParseOption) ([]*stream.Event, error) {
	src, err := NewSource(d, opts...)
	if err != nil {
		return nil, err
	}
	var res []*stream.Event
	for {
		ev, err := src.ReadEvent()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, ev)
	}
}
