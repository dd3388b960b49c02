package readers

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
)

// BigInt returns a reader for arbitrary-precision integer arguments.
// Numbers must be whole; strings are parsed as base 10. The resolved
// value is a *big.Int.
func BigInt() routing.Reader { return bigIntReader{} }

type bigIntReader struct{}

func (bigIntReader) Arity() int { return routing.ArityOne }

func (bigIntReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	if raw == cty.NilVal {
		return nil, errNoValue
	}

	if raw.Type() == cty.Number {
		if !raw.IsKnown() {
			return nil, errUnknown
		}

		if raw.IsNull() {
			return nil, errors.New("value of type number is null")
		}

		z, acc := raw.AsBigFloat().Int(nil)
		if acc != big.Exact {
			return nil, errors.New("number is not a whole integer")
		}

		return z, nil
	}

	v, err := prim(raw, cty.String)
	if err != nil {
		return nil, err
	}

	z, ok := new(big.Int).SetString(v.AsString(), 10)
	if !ok {
		return nil, fmt.Errorf("failed to convert %s to big.Int", v.AsString())
	}

	return z, nil
}
