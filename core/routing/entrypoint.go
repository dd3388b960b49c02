package routing

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidEntryPoint is returned by NewEntryPoint when a descriptor
// cannot be built from the given parts.
var ErrInvalidEntryPoint = errors.New("invalid entry point")

// Handler is the bound call of an entry point. It receives the resolved
// arguments flattened across groups, in declaration order. A returned
// error is reported to the caller as an [InvocationError] carrying it as
// the cause; a panic is recovered and reported the same way.
type Handler func(ctx context.Context, target any, args []any) (any, error)

// EntryPoint is the immutable descriptor of one callable endpoint: its
// name, optional documentation, argument groups and the bound call.
// Descriptors carry no mutable state and are safe for concurrent use.
type EntryPoint struct {
	name    string
	doc     string
	groups  [][]*Signature
	handler Handler
	numArgs int
}

// NewEntryPoint builds an entry point descriptor.
//
// groups holds one ordered signature sequence per argument group; Invoke
// later expects one raw map per group in the same order. The signatures
// are copied, so the caller may reuse its slices. Construction fails with
// ErrInvalidEntryPoint when name is empty, handler is nil, a signature
// has an empty name or a nil reader, a reader reports an arity other
// than ArityNone or ArityOne, or two signatures within one group share a
// name.
func NewEntryPoint(name, doc string, groups [][]Signature, handler Handler) (*EntryPoint, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidEntryPoint)
	}

	if handler == nil {
		return nil, fmt.Errorf("%w: '%s': nil handler", ErrInvalidEntryPoint, name)
	}

	ep := &EntryPoint{
		name:    name,
		doc:     doc,
		groups:  make([][]*Signature, len(groups)),
		handler: handler,
	}

	for gi, group := range groups {
		seen := make(map[string]struct{}, len(group))
		sigs := make([]*Signature, len(group))

		for ai := range group {
			sig := group[ai]

			if sig.Name == "" {
				return nil, fmt.Errorf("%w: '%s': group %d: argument %d has no name",
					ErrInvalidEntryPoint, name, gi, ai)
			}

			if sig.Reader == nil {
				return nil, fmt.Errorf("%w: '%s': argument '%s' has no reader",
					ErrInvalidEntryPoint, name, sig.Name)
			}

			if a := sig.Reader.Arity(); a != ArityNone && a != ArityOne {
				return nil, fmt.Errorf("%w: '%s': argument '%s' reader reports arity %d",
					ErrInvalidEntryPoint, name, sig.Name, a)
			}

			if _, ok := seen[sig.Name]; ok {
				return nil, fmt.Errorf("%w: '%s': duplicate argument '%s'",
					ErrInvalidEntryPoint, name, sig.Name)
			}
			seen[sig.Name] = struct{}{}

			sigs[ai] = &sig
			ep.numArgs++
		}

		ep.groups[gi] = sigs
	}

	return ep, nil
}

// MustNewEntryPoint is like NewEntryPoint but panics on error. Intended
// for descriptors assembled from constants at program start.
func MustNewEntryPoint(name, doc string, groups [][]Signature, handler Handler) *EntryPoint {
	ep, err := NewEntryPoint(name, doc, groups, handler)
	if err != nil {
		panic(err)
	}

	return ep
}

// Name returns the entry point's name.
func (ep *EntryPoint) Name() string {
	return ep.name
}

// Doc returns the entry point's documentation, possibly empty.
func (ep *EntryPoint) Doc() string {
	return ep.doc
}

// NumArgs returns the total number of declared arguments across all
// groups.
func (ep *EntryPoint) NumArgs() int {
	return ep.numArgs
}

// Groups returns the declared argument groups. The slices are fresh on
// every call; the signature pointers are the descriptor's own and must
// not be mutated.
func (ep *EntryPoint) Groups() [][]*Signature {
	out := make([][]*Signature, len(ep.groups))
	for i, group := range ep.groups {
		out[i] = append([]*Signature(nil), group...)
	}

	return out
}
