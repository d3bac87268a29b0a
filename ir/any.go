package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ToAny returns a plain Go view of o for use with packages which work on
// maps and slices: map[string]any for a Hash, []any for an Array, and
// int64, float64, string, bool or nil for scalars.  Anchors are dropped, an
// Alias becomes the string "*name", and a Hash key which is not a String is
// keyed by its Repr.  BadValue maps to nil.
func (o *Out) ToAny() any {
	switch o.Type {
	case HashType:
		m := make(map[string]any, len(o.Keys))
		for i, k := range o.Keys {
			key, ok := k.Resolve().asString()
			if !ok {
				key = k.Repr()
			}
			m[key] = o.Values[i].ToAny()
		}
		return m
	case ArrayType:
		res := make([]any, len(o.Values))
		for i, v := range o.Values {
			res[i] = v.ToAny()
		}
		return res
	case AnchoredType:
		return o.Child.ToAny()
	case AliasType:
		return "*" + o.Name
	case StringType:
		return o.String
	case IntegerType:
		return o.Int64
	case RealType:
		f, ok := ParseFloat(o.Number)
		if !ok {
			return math.NaN()
		}
		return f
	case BooleanType:
		return o.Bool
	default:
		return nil
	}
}

func (o *Out) asString() (string, bool) {
	if o == nil || o.Type != StringType {
		return "", false
	}
	return o.String, true
}

// FromAny is the inverse of ToAny for the types it produces, also accepting
// the other Go integer and float kinds.  Map keys are sorted.
func FromAny(v any) (*Out, error) {
	switch x := v.(type) {
	case nil:
		return OutNull(), nil
	case *Out:
		return x, nil
	case bool:
		return OutBool(x), nil
	case string:
		return OutString(x), nil
	case int:
		return OutInt(int64(x)), nil
	case int32:
		return OutInt(int64(x)), nil
	case int64:
		return OutInt(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d out of range", ErrConvert, x)
		}
		return OutInt(int64(x)), nil
	case float32:
		return OutReal(formatFloat(float64(x))), nil
	case float64:
		return OutReal(formatFloat(x)), nil
	case []any:
		vs := make([]*Out, len(x))
		for i, e := range x {
			o, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = o
		}
		return OutArray(vs...), nil
	case map[string]any:
		kvs := make([]OutKeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			o, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, OutKeyVal{Key: OutString(k), Val: o})
		}
		return OutHash(kvs...), nil
	}
	return nil, fmt.Errorf("%w: unsupported %T", ErrConvert, v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
