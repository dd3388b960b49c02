package readers

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	errNoValue = errors.New("no value supplied")
	errUnknown = errors.New("value is unknown")
)

// prim converts raw to the wanted primitive type and rejects null and
// unknown results.
func prim(raw cty.Value, want cty.Type) (cty.Value, error) {
	if raw == cty.NilVal {
		return cty.NilVal, errNoValue
	}

	v, err := convert.Convert(raw, want)
	if err != nil {
		return cty.NilVal, err
	}

	if !v.IsKnown() {
		return cty.NilVal, errUnknown
	}

	if v.IsNull() {
		return cty.NilVal, fmt.Errorf("value of type %s is null", want.FriendlyName())
	}

	return v, nil
}

// String returns a reader for string arguments. Any raw value cty can
// convert to a string is accepted.
func String() routing.Reader { return stringReader{} }

type stringReader struct{}

func (stringReader) Arity() int { return routing.ArityOne }

func (stringReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.String)
	if err != nil {
		return nil, err
	}

	return v.AsString(), nil
}

// Bool returns a reader for boolean arguments. The strings "true" and
// "false" convert.
func Bool() routing.Reader { return boolReader{} }

type boolReader struct{}

func (boolReader) Arity() int { return routing.ArityOne }

func (boolReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.Bool)
	if err != nil {
		return nil, err
	}

	return v.True(), nil
}

// Int64 returns a reader for int64 arguments. The raw value must be a
// whole number within the int64 range; numeric strings convert.
func Int64() routing.Reader { return int64Reader{} }

type int64Reader struct{}

func (int64Reader) Arity() int { return routing.ArityOne }

func (int64Reader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.Number)
	if err != nil {
		return nil, err
	}

	var out int64
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Float64 returns a reader for float64 arguments; numeric strings
// convert.
func Float64() routing.Reader { return float64Reader{} }

type float64Reader struct{}

func (float64Reader) Arity() int { return routing.ArityOne }

func (float64Reader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.Number)
	if err != nil {
		return nil, err
	}

	var out float64
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return nil, err
	}

	return out, nil
}
