// Package readers provides the stock conversion capabilities used by
// entry point signatures: readers that turn raw
// [github.com/zclconf/go-cty/cty.Value] inputs into typed Go values, plus
// a derived reader that pulls values out of the invocation context.
//
// All readers here are stateless and may be shared freely between
// signatures, entry points and concurrent invocations. Conversions are
// lenient about the raw kind where cty defines a conversion (a number
// supplied as the string "5" reads fine as an int64) and strict about
// the result: null or unknown values are rejected, integers must be
// whole and in range.
//
// The constructors return [github.com/anoideaopen/entrypoint/core/routing.Reader]
// values; compose them into signatures at descriptor construction time.
package readers
