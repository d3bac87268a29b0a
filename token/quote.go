package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/yamlfmt/ir"
)

// words which some YAML readers resolve to booleans or null.
var yaml11Words = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true,
	"off": true, "Off": true, "OFF": true,
	"True": true, "TRUE": true, "False": true, "FALSE": true,
	"Null": true, "NULL": true,
}

// NeedsQuote reports whether v cannot be written as a plain scalar.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if ir.FromPlain(v).Type != ir.StringType {
		return true
	}
	if yaml11Words[v] {
		return true
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	switch first {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>',
		'\'', '"', '%', '@', '`', '.':
		return true
	}
	if last == ':' || strings.Contains(v, ": ") {
		return true
	}
	for _, r := range v {
		switch r {
		case '#', '[', ']', '{', '}', ',', '"', '\'', '\\':
			return true
		}
		if r < 0x20 || escaped(r) {
			return true
		}
	}
	return false
}

// printable reports whether r may appear unescaped in a YAML stream.
func printable(r rune) bool {
	switch r {
	case '\t', '\r', '\n':
		return true
	}
	switch {
	case 0x20 <= r && r <= 0x7e:
		return true
	case 0xa0 <= r && r <= 0xd7ff:
		return true
	case 0xe000 <= r && r <= 0xfffd:
		return true
	case 0x010000 <= r && r <= 0x10FFFF:
		return true
	case r == 0x85:
		return true
	}
	return false
}

// escaped reports whether Quote writes r as an escape sequence.  Besides
// the non printable runes this covers the unicode line breaks and the
// byte order mark, which readers may otherwise normalize.
func escaped(r rune) bool {
	switch r {
	case 0x85, 0x2028, 0x2029, 0xfeff:
		return true
	}
	return !printable(r)
}

const hexDigits = "0123456789abcdef"

// Quote returns v as a YAML double quoted scalar.  Invalid UTF-8 is
// replaced by U+FFFD.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if !escaped(r) {
				d = utf8.AppendRune(d, r)
				continue
			}
			// escaped runes are all in the BMP
			d = append(d, '\\', 'u')
			for s := 12; s >= 0; s -= 4 {
				d = append(d, hexDigits[r>>s&0xf])
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Scalar returns v as it is written: plain when possible, double quoted
// otherwise.
func Scalar(v string) string {
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}
