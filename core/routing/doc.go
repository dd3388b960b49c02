// Package routing implements the runtime dispatch core for typed entry
// points: immutable endpoint descriptors, per-argument readers, and the
// engine that validates raw inputs, binds them to typed values and
// performs the bound call.
//
// An [EntryPoint] describes one callable endpoint: a name, optional
// documentation, an ordered sequence of argument groups (each an ordered
// sequence of [Signature] values) and the bound [Handler]. Descriptors are
// produced once, at startup, normally by an external generator; this
// package only consumes them. Descriptors, signatures and readers are
// immutable after construction and safe for concurrent use by any number
// of simultaneous invocations.
//
// Raw inputs arrive as one [Raw] map per argument group, keyed by declared
// parameter name. Values are [github.com/zclconf/go-cty/cty.Value] and
// stay opaque to the engine; only the signature's [Reader] interprets
// them. How the maps were tokenized out of a transport (query strings,
// request bodies, message fields) is the caller's concern.
//
// [EntryPoint.Invoke] is the sole operation. Every invocation ends in
// exactly one of four outcomes:
//
//   - a value with a nil error, when every argument resolved and the
//     bound call returned;
//   - [MismatchedArgumentsError], when the first raw map omits required
//     first-group arguments or carries undeclared keys, detected before
//     any value is read;
//   - [InvalidArgumentsError], when one or more arguments failed to
//     resolve; every failure is collected, none are dropped;
//   - [InvocationError], when the bound call itself failed after all
//     arguments resolved.
//
// Callers classify outcomes with [errors.Is] against the package
// sentinels ([ErrMismatchedArguments], [ErrInvalidArguments],
// [ErrInvocation]) and map them to user-facing behavior, for example
// 400-class versus 500-class responses.
//
// The structural pre-check covers only the first argument group. For
// entry points with several groups, an absent argument in a later group
// surfaces as a [DefaultFailedError] inside [InvalidArgumentsError]
// rather than in a mismatch report. Endpoints that rely on precise
// mismatch reporting should declare their client-supplied parameters in
// the first group.
//
// # Example
//
// Below is an example of declaring and invoking an entry point with one
// required and one defaulted argument:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/anoideaopen/entrypoint/core/readers"
//	    "github.com/anoideaopen/entrypoint/core/routing"
//	    "github.com/zclconf/go-cty/cty"
//	)
//
//	func main() {
//	    ep, err := routing.NewEntryPoint(
//	        "Add",
//	        "adds two integers",
//	        [][]routing.Signature{{
//	            {Name: "a", TypeLabel: "int64", Reader: readers.Int64()},
//	            {Name: "b", TypeLabel: "int64", Reader: readers.Int64(),
//	                Default: func(any) (any, error) { return int64(10), nil }},
//	        }},
//	        func(_ context.Context, _ any, args []any) (any, error) {
//	            return args[0].(int64) + args[1].(int64), nil
//	        },
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    sum, err := ep.Invoke(context.Background(), nil,
//	        routing.Raw{"a": cty.StringVal("5")})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(sum) // 15
//	}
package routing
