package readers

import (
	"context"
	"time"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
)

// Time returns a reader for timestamp arguments parsed with the given
// layout. The resolved value is a time.Time.
func Time(layout string) routing.Reader { return timeReader{layout: layout} }

// RFC3339Time returns a reader for RFC 3339 timestamp arguments.
func RFC3339Time() routing.Reader { return Time(time.RFC3339) }

type timeReader struct {
	layout string
}

func (timeReader) Arity() int { return routing.ArityOne }

func (r timeReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.String)
	if err != nil {
		return nil, err
	}

	t, err := time.Parse(r.layout, v.AsString())
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Duration returns a reader for duration arguments in Go syntax, such as
// "1h30m". The resolved value is a time.Duration.
func Duration() routing.Reader { return durationReader{} }

type durationReader struct{}

func (durationReader) Arity() int { return routing.ArityOne }

func (durationReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.String)
	if err != nil {
		return nil, err
	}

	d, err := time.ParseDuration(v.AsString())
	if err != nil {
		return nil, err
	}

	return d, nil
}
