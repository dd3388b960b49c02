package mux

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/anoideaopen/entrypoint/core/routing"
)

var (
	// ErrEntryPointAlreadyDefined is returned when two descriptors share a name.
	ErrEntryPointAlreadyDefined = errors.New("entry point has already been defined")

	// ErrUnsupportedEntryPoint is returned when no descriptor declares the name.
	ErrUnsupportedEntryPoint = errors.New("unsupported entry point")

	// ErrNilEntryPoint is returned when a nil descriptor is registered.
	ErrNilEntryPoint = errors.New("nil entry point")
)

// Router is a multiplexer that routes invocations to the appropriate
// entry point by name. It is immutable after construction.
type Router struct {
	entryPoints map[string]*routing.EntryPoint
	names       []string // sorted
}

// NewRouter creates a new Router over the provided descriptors.
// It returns an error if any entry point is nil or defined more than once.
func NewRouter(entryPoints ...*routing.EntryPoint) (*Router, error) {
	byName := make(map[string]*routing.EntryPoint, len(entryPoints))
	names := make([]string, 0, len(entryPoints))

	for _, ep := range entryPoints {
		if ep == nil {
			return nil, ErrNilEntryPoint
		}

		if _, ok := byName[ep.Name()]; ok {
			return nil, fmt.Errorf("%w: '%s'", ErrEntryPointAlreadyDefined, ep.Name())
		}

		byName[ep.Name()] = ep
		names = append(names, ep.Name())
	}

	sort.Strings(names)

	return &Router{
		entryPoints: byName,
		names:       names,
	}, nil
}

// MustNewRouter is like NewRouter but panics on error.
func MustNewRouter(entryPoints ...*routing.EntryPoint) *Router {
	r, err := NewRouter(entryPoints...)
	if err != nil {
		panic(err)
	}

	return r
}

// Resolve returns the descriptor registered under name.
func (r *Router) Resolve(name string) (*routing.EntryPoint, error) {
	ep, ok := r.entryPoints[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedEntryPoint, name)
	}

	return ep, nil
}

// Invoke resolves the named entry point and invokes it with the provided
// raw argument groups.
func (r *Router) Invoke(ctx context.Context, name string, target any, groups ...routing.Raw) (any, error) {
	ep, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}

	return ep.Invoke(ctx, target, groups...)
}

// EntryPoints returns the registered descriptors sorted by name. The
// slice is fresh on every call.
func (r *Router) EntryPoints() []*routing.EntryPoint {
	out := make([]*routing.EntryPoint, len(r.names))
	for i, name := range r.names {
		out[i] = r.entryPoints[name]
	}

	return out
}

// Describe returns the introspection views of all registered descriptors
// sorted by name.
func (r *Router) Describe() []routing.Description {
	out := make([]routing.Description, len(r.names))
	for i, name := range r.names {
		out[i] = r.entryPoints[name].Describe()
	}

	return out
}
