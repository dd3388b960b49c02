package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoideaopen/entrypoint/core/logger"
	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/anoideaopen/entrypoint/core/routing/mux"
	"github.com/anoideaopen/entrypoint/core/telemetry"
	"github.com/google/uuid"
	"github.com/op/go-logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies the dispatcher's spans in exported traces.
const tracerName = "github.com/anoideaopen/entrypoint/core"

// ErrNilRouter is returned when a nil router is passed to WithRouter.
var ErrNilRouter = errors.New("nil router")

// Dispatcher is the synchronous front door of the dispatch core. It
// resolves entry points by name through its router, invokes them with
// the caller's raw argument groups and surrounds every invocation with
// a trace span, an outcome attribute and outcome logging.
//
// A Dispatcher is immutable after construction and safe for concurrent
// use by multiple goroutines.
type Dispatcher struct {
	router *mux.Router
	tracer trace.Tracer
	log    *logging.Logger
}

// DispatcherOption represents a function that applies configuration
// options to a dispatcherOptions object.
type DispatcherOption func(opts *dispatcherOptions) error

// dispatcherOptions is a structure that holds advanced options for
// configuring a Dispatcher instance.
type dispatcherOptions struct {
	EntryPoints    []*routing.EntryPoint // EntryPoints is a list of descriptors to build a router from.
	Router         *mux.Router           // Router is a pre-built router; it takes precedence over EntryPoints.
	TracerProvider trace.TracerProvider  // TracerProvider overrides the globally installed provider.
}

// WithEntryPoints returns a DispatcherOption function that registers the
// given descriptors in the dispatcher options.
func WithEntryPoints(entryPoints ...*routing.EntryPoint) DispatcherOption {
	return func(o *dispatcherOptions) error {
		o.EntryPoints = append(o.EntryPoints, entryPoints...)
		return nil
	}
}

// WithRouter returns a DispatcherOption function that sets a pre-built
// router in the dispatcher options. A router set this way takes
// precedence over descriptors registered with WithEntryPoints.
func WithRouter(router *mux.Router) DispatcherOption {
	return func(o *dispatcherOptions) error {
		if router == nil {
			return ErrNilRouter
		}
		o.Router = router
		return nil
	}
}

// WithTracerProvider returns a DispatcherOption function that sets the
// trace provider in the dispatcher options. When omitted, the provider
// installed globally (see telemetry.InstallTraceProvider) is used.
func WithTracerProvider(tp trace.TracerProvider) DispatcherOption {
	return func(o *dispatcherOptions) error {
		o.TracerProvider = tp
		return nil
	}
}

// NewDispatcher creates a new Dispatcher with the given options.
//
// options: A variadic number of DispatcherOption function types which are
// used to apply specific configurations to the dispatcherOptions
// structure, such as the set of entry points, a pre-built router or a
// dedicated trace provider.
//
// Returns:
// A pointer to a Dispatcher instance and an error. An error is non-nil
// if there is a failure in applying the provided DispatcherOption
// functions, or if the registered entry points cannot form a router.
//
// Example usage:
//
//	add := routing.MustNewEntryPoint("Add", "", groups, handler)
//	d, err := core.NewDispatcher(core.WithEntryPoints(add))
//	if err != nil {
//		// Handle error
//	}
func NewDispatcher(options ...DispatcherOption) (*Dispatcher, error) {
	// Apply dispatcher options provided by the caller.
	opts := dispatcherOptions{}
	for _, option := range options {
		if option == nil {
			continue
		}
		err := option(&opts)
		if err != nil {
			return nil, fmt.Errorf("reading opts: %w", err)
		}
	}

	// Set up the router.
	var (
		router = opts.Router
		err    error
	)
	if router == nil {
		router, err = mux.NewRouter(opts.EntryPoints...)
		if err != nil {
			return nil, err
		}
	}

	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Dispatcher{
		router: router,
		tracer: tp.Tracer(tracerName),
		log:    logger.Logger(),
	}, nil
}

// Router returns the dispatcher's router.
func (d *Dispatcher) Router() *mux.Router {
	return d.router
}

// Describe returns the introspection view of every registered entry
// point, ordered by name.
func (d *Dispatcher) Describe() []routing.Description {
	return d.router.Describe()
}

// Dispatch resolves the named entry point and invokes it with the raw
// argument groups, returning the handler's result. Resolution failures
// and every invocation outcome are recorded on the surrounding span; the
// error, if any, is returned to the caller unchanged.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	name string,
	target any,
	groups ...routing.Raw,
) (any, error) {
	id := uuid.NewString()

	ctx, span := d.tracer.Start(ctx, "entrypoint.Dispatch", trace.WithAttributes(
		telemetry.EntryPoint(name),
		telemetry.InvocationID(id),
		telemetry.ArgumentGroups(len(groups)),
	))
	defer span.End()

	entryPoint, err := d.router.Resolve(name)
	if err != nil {
		span.SetAttributes(telemetry.Outcome(telemetry.OutcomeOf(err)))
		span.SetStatus(codes.Error, err.Error())
		d.log.Errorf("dispatch '%s' [%s]: %v", name, id, err)
		return nil, err
	}

	span.AddEvent("call")
	result, err := entryPoint.Invoke(ctx, target, groups...)

	outcome := telemetry.OutcomeOf(err)
	span.SetAttributes(telemetry.Outcome(outcome))

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		d.log.Debugf("dispatch '%s' [%s] %s: %v", name, id, outcome, err)
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	d.log.Debugf("dispatch '%s' [%s] ok", name, id)

	return result, nil
}

// DispatchWithMetadata is Dispatch for invocations arriving over a
// transport: a remote trace parent packed into the metadata map is
// extracted and the dispatch span continues it.
func (d *Dispatcher) DispatchWithMetadata(
	ctx context.Context,
	metadata map[string][]byte,
	name string,
	target any,
	groups ...routing.Raw,
) (any, error) {
	return d.Dispatch(ContextFromMetadata(ctx, metadata), name, target, groups...)
}

// ContextFromMetadata returns a context carrying the remote trace parent
// extracted from transport metadata. Metadata that cannot be unpacked is
// ignored and the original context is returned.
func ContextFromMetadata(ctx context.Context, metadata map[string][]byte) context.Context {
	carrier, err := telemetry.UnpackMetadata(metadata)
	if err != nil {
		return ctx
	}

	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}

// MetadataFromContext packs the trace context of ctx into transport
// metadata for a downstream dispatcher to continue.
func MetadataFromContext(ctx context.Context) (map[string][]byte, error) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	return telemetry.PackToMetadata(carrier)
}
