package mock

import (
	"context"
	"sync"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
)

// ReadFunc is the scripted body of a mock reader.
type ReadFunc func(ctx context.Context, name string, raw cty.Value) (any, error)

// Reader is a scripted conversion capability for engine tests. It counts
// reads so tests can assert whether resolution consulted it.
type Reader struct {
	arity int
	fn    ReadFunc

	mu    sync.Mutex
	reads int
}

// NewReader returns a scripted reader of arity one.
func NewReader(fn ReadFunc) *Reader {
	return &Reader{arity: routing.ArityOne, fn: fn}
}

// NewDerived returns a scripted reader of arity zero.
func NewDerived(fn ReadFunc) *Reader {
	return &Reader{arity: routing.ArityNone, fn: fn}
}

// Arity reports the scripted arity.
func (r *Reader) Arity() int { return r.arity }

// Read counts the call and delegates to the scripted body.
func (r *Reader) Read(ctx context.Context, name string, raw cty.Value) (any, error) {
	r.mu.Lock()
	r.reads++
	r.mu.Unlock()

	return r.fn(ctx, name, raw)
}

// Reads returns how many times Read ran.
func (r *Reader) Reads() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reads
}
