// Package encode writes output trees as block style YAML.
//
// # Usage
//
//	docs, err := parse.Load(data)
//	if err != nil {
//	    return err
//	}
//	err = encode.EncodeDocs(ir.ConvertAll(docs), os.Stdout)
//
//	// with options
//	err = encode.Encode(out, w, encode.Indent(4), encode.EncodeColors(encode.NewColors()))
//
// Every document starts with "---".  Strings are written plain when
// token.NeedsQuote allows it and double quoted otherwise, so that reading
// the output back yields the same tree.  Keys which are arrays or hashes
// use the explicit "? " form.
//
// # Related Packages
//
//   - github.com/signadot/yamlfmt/ir - document trees
//   - github.com/signadot/yamlfmt/parse - parse text to trees
//   - github.com/signadot/yamlfmt/token - scalar quoting
package encode
