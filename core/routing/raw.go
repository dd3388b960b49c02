package routing

import "github.com/zclconf/go-cty/cty"

// Raw is one argument group's input: declared parameter name to raw
// value. Values are opaque to the engine; only the matching signature's
// reader interprets them. A nil Raw behaves as an empty map.
type Raw map[string]cty.Value

// RawText renders a raw value for diagnostics. Strings render as their
// contents; other kinds use their cty syntax. Null, unknown and absent
// values are labeled as such. The result is informational and carried
// inside [InvalidValueError].
func RawText(v cty.Value) string {
	switch {
	case v == cty.NilVal:
		return "<no value>"
	case !v.IsKnown():
		return "<unknown>"
	case v.IsNull():
		return "<null>"
	case v.Type() == cty.String:
		return v.AsString()
	default:
		return v.GoString()
	}
}
