package readers

import (
	"context"
	"fmt"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
)

// FromContext returns a derived reader: arity zero, never consulting the
// raw map. The value is taken from the invocation context under key and
// the read fails when the context carries none. Use it for ambient
// arguments such as authenticated principals or request metadata.
func FromContext(key any) routing.Reader { return ctxReader{key: key} }

type ctxReader struct {
	key any
}

func (ctxReader) Arity() int { return routing.ArityNone }

func (r ctxReader) Read(ctx context.Context, name string, _ cty.Value) (any, error) {
	v := ctx.Value(r.key)
	if v == nil {
		return nil, fmt.Errorf("context carries no value for argument '%s'", name)
	}

	return v, nil
}
