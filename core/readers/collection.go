package readers

import (
	"context"
	"errors"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
)

// Strings returns a reader for string list arguments. Lists, sets and
// tuples of convertible elements are accepted. The resolved value is a
// []string; elements must be known and non-null.
func Strings() routing.Reader { return stringsReader{} }

type stringsReader struct{}

func (stringsReader) Arity() int { return routing.ArityOne }

func (stringsReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.List(cty.String))
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()

		if !ev.IsKnown() {
			return nil, errUnknown
		}

		if ev.IsNull() {
			return nil, errors.New("list contains a null element")
		}

		out = append(out, ev.AsString())
	}

	return out, nil
}
