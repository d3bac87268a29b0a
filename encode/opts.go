package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Indent sets the number of spaces per nesting level.  The default is 2;
// smaller values are ignored.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 2 {
			es.indent = n
		}
	}
}

// BadValueAsNull writes BadValue nodes as null instead of as the invalid
// tagged scalar !!null bad, which reloads as BadValue.
func BadValueAsNull(v bool) EncodeOption {
	return func(es *EncState) { es.badValueAsNull = v }
}
