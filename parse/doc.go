// Package parse loads YAML text into document trees.
//
// # Usage
//
//	docs, err := parse.Load(data)
//	if err != nil {
//	    return err
//	}
//
//	// from a string, with options
//	docs, err := parse.LoadString(s, parse.WithSource(parse.SourceGoYAML), parse.MaxDepth(64))
//
// Two event sources are available: yamlv3 (the default, built on
// gopkg.in/yaml.v3) and goyaml (built on github.com/goccy/go-yaml).  Both
// feed the same stream.Builder, so scalar resolution and alias handling do
// not depend on the source.
//
// # Related Packages
//
//   - github.com/signadot/yamlfmt/ir - document trees
//   - github.com/signadot/yamlfmt/stream - events and the builder
//   - github.com/signadot/yamlfmt/encode - serialization
package parse
