package readers

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Object returns a reader decoding structured raw values into fresh
// values of the prototype's type. The cty type is implied from the
// prototype once, at construction; struct prototypes must carry cty
// field tags, as gocty.ImpliedType requires. A pointer prototype is
// dereferenced, and the resolved value is always a non-pointer copy.
func Object(prototype any) (routing.Reader, error) {
	rt := reflect.TypeOf(prototype)
	if rt == nil {
		return nil, errors.New("nil object prototype")
	}

	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	ty, err := gocty.ImpliedType(reflect.Zero(rt).Interface())
	if err != nil {
		return nil, fmt.Errorf("unable to infer cty.Type for %s: %w", rt, err)
	}

	return objectReader{rt: rt, ty: ty}, nil
}

// MustObject is like Object but panics on error.
func MustObject(prototype any) routing.Reader {
	r, err := Object(prototype)
	if err != nil {
		panic(err)
	}

	return r
}

type objectReader struct {
	rt reflect.Type
	ty cty.Type
}

func (objectReader) Arity() int { return routing.ArityOne }

func (r objectReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	if raw == cty.NilVal {
		return nil, errNoValue
	}

	v, err := convert.Convert(raw, r.ty)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to required type %s: %w",
			raw.Type().FriendlyName(), r.ty.FriendlyName(), err)
	}

	if !v.IsWhollyKnown() {
		return nil, errUnknown
	}

	if v.IsNull() {
		return nil, fmt.Errorf("value of type %s is null", r.ty.FriendlyName())
	}

	p := reflect.New(r.rt)
	if err := gocty.FromCtyValue(v, p.Interface()); err != nil {
		return nil, err
	}

	return p.Elem().Interface(), nil
}
