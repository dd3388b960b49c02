// Package mux provides a multiplexer that holds a set of entry point
// descriptors and routes invocations to them by name. It is the lookup
// layer between a dispatch surface and the
// [github.com/anoideaopen/entrypoint/core/routing] engine: the engine
// validates and binds arguments for one descriptor, the mux picks which
// descriptor that is.
//
// Example usage:
//
//	router, err := mux.NewRouter(addEP, subEP)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sum, err := router.Invoke(ctx, "Add", nil, routing.Raw{"a": cty.StringVal("5")})
//
// # Error Handling
//
// If two descriptors share a name, NewRouter returns
// ErrEntryPointAlreadyDefined to avoid ambiguity in routing. Resolving or
// invoking a name no descriptor declares returns ErrUnsupportedEntryPoint.
package mux
