package routing

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Reader arities. A reader either derives its value without consulting
// the raw map (ArityNone) or consumes the raw value supplied under the
// signature's name (ArityOne). No other arity is valid.
const (
	ArityNone = 0
	ArityOne  = 1
)

// Reader converts the raw representation of a single argument into its
// typed value. Implementations must be stateless with respect to
// invocations: one reader instance is shared by every entry point that
// references it and by all concurrent calls.
//
// Read receives the signature name for diagnostics and the raw value
// taken from the group map. Readers reporting ArityNone are always called
// with [cty.NilVal] and must produce the value from ctx alone. A reader
// must not have observable side effects beyond the conversion itself.
type Reader interface {
	// Arity reports whether the reader consumes a raw input: ArityNone
	// when the value is derived, ArityOne when it is read from the map.
	Arity() int

	// Read converts raw into the argument's typed value. The returned
	// error becomes the cause of the per-argument resolution failure.
	Read(ctx context.Context, name string, raw cty.Value) (any, error)
}
