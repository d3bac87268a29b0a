package ir

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// CoreHandle is the tag handle of the YAML core schema tags (!!int, ...).
const CoreHandle = "!!"

// FromPlain resolves the text of an untagged plain scalar using the core
// schema:
//
//	0x1F, 0o17, +12       Integer
//	~, null               Null
//	true, false           Boolean
//	-12, 12               Integer
//	1.5, 1e3, .inf, .nan  Real
//
// Anything else is a String holding v verbatim.
func FromPlain(v string) *Node {
	switch {
	case strings.HasPrefix(v, "0x"):
		if i, err := strconv.ParseInt(v[2:], 16, 64); err == nil {
			return FromInt(i)
		}
	case strings.HasPrefix(v, "0o"):
		if i, err := strconv.ParseInt(v[2:], 8, 64); err == nil {
			return FromInt(i)
		}
	case strings.HasPrefix(v, "+"):
		if i, err := strconv.ParseInt(v[1:], 10, 64); err == nil {
			return FromInt(i)
		}
	}
	switch v {
	case "~", "null":
		return Null()
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if _, ok := ParseFloat(v); ok {
		return FromReal(v)
	}
	return FromString(v)
}

// FromTagged resolves a plain scalar carrying an explicit tag.  Under the
// core handle, bool, int, float and null must match their grammar or the
// result is BadValue.  Every other tag yields a String.
func FromTagged(handle, suffix, v string) *Node {
	if handle != CoreHandle {
		return FromString(v)
	}
	switch suffix {
	case "bool":
		switch v {
		case "true":
			return FromBool(true)
		case "false":
			return FromBool(false)
		}
		return BadValue()
	case "int":
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return BadValue()
		}
		return FromInt(i)
	case "float":
		if _, ok := ParseFloat(v); !ok {
			return BadValue()
		}
		return FromReal(v)
	case "null":
		switch v {
		case "~", "null":
			return Null()
		}
		return BadValue()
	default:
		return FromString(v)
	}
}

// ParseFloat parses the text of a Real.  It accepts decimal floating point
// literals (an overflowing exponent gives an infinity) and the YAML
// spellings .inf, +.inf, -.inf and .nan in any case.  Hexadecimal forms and
// digit separators are rejected.
func ParseFloat(v string) (float64, bool) {
	switch {
	case strings.EqualFold(v, ".inf"), strings.EqualFold(v, "+.inf"):
		return math.Inf(1), true
	case strings.EqualFold(v, "-.inf"):
		return math.Inf(-1), true
	case strings.EqualFold(v, ".nan"):
		return math.NaN(), true
	}
	if strings.IndexByte(v, '_') != -1 {
		return 0, false
	}
	digits := strings.TrimLeft(v, "+-")
	if len(v)-len(digits) > 1 {
		return 0, false
	}
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
