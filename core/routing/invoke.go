package routing

import (
	"context"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Invoke validates the raw inputs against the descriptor, binds them to
// typed arguments and performs the bound call.
//
// The caller supplies one raw map per argument group, in group order.
// Trailing groups may be omitted and behave as empty maps; extra maps
// beyond the declared groups are ignored.
//
// The structural pre-check runs first and compares only key presence in
// the first raw map against the first group: required arguments without
// a raw value are reported as missing, keys no first-group signature
// declares are reported as unknown. When the check fails, nothing is
// read and the bound call never runs. Later groups are not pre-checked;
// their absent arguments surface during resolution instead.
//
// Resolution then reads every declared argument in declaration order. A
// supplied value always wins over the default; the default supplier runs
// only on absence. All resolution failures are collected before
// returning, so the error reports every bad argument at once.
//
// Faults never escape: a panic in a reader, a default supplier or the
// bound call converts into an [InvocationError], as does an error the
// bound call returns.
func (ep *EntryPoint) Invoke(ctx context.Context, target any, groups ...Raw) (any, error) {
	if err := ep.checkFirstGroup(groups); err != nil {
		return nil, err
	}

	return ep.invoke0(ctx, target, groups)
}

// checkFirstGroup compares key presence in the first raw map against the
// first signature group. No raw value is read and no default runs. An
// entry point without groups is treated as having one empty group, so
// any supplied key is unknown.
func (ep *EntryPoint) checkFirstGroup(groups []Raw) error {
	var first []*Signature
	if len(ep.groups) > 0 {
		first = ep.groups[0]
	}

	var raw Raw
	if len(groups) > 0 {
		raw = groups[0]
	}

	declared := make(map[string]struct{}, len(first))

	var missing []*Signature
	for _, sig := range first {
		declared[sig.Name] = struct{}{}

		if sig.Reader.Arity() == ArityNone || sig.HasDefault() {
			continue
		}

		if _, ok := raw[sig.Name]; !ok {
			missing = append(missing, sig)
		}
	}

	var unknown []string
	for name := range raw {
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	if len(missing) > 0 || len(unknown) > 0 {
		return &MismatchedArgumentsError{Missing: missing, Unknown: unknown}
	}

	return nil
}

// invoke0 resolves the arguments and applies the bound call under a
// single recover boundary covering both.
func (ep *EntryPoint) invoke0(ctx context.Context, target any, groups []Raw) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, &InvocationError{Cause: panicCause(r)}
		}
	}()

	args, perrs := ep.resolveArgs(ctx, target, groups)
	if len(perrs) > 0 {
		return nil, &InvalidArgumentsError{Errors: perrs}
	}

	out, callErr := ep.handler(ctx, target, args)
	if callErr != nil {
		return nil, &InvocationError{Cause: callErr}
	}

	return out, nil
}

// resolveArgs reads every declared argument across all groups in
// declaration order. Failures are collected, not short-circuited; the
// argument slice is only returned when the error list is empty.
func (ep *EntryPoint) resolveArgs(ctx context.Context, target any, groups []Raw) ([]any, []ParamError) {
	args := make([]any, 0, ep.numArgs)

	var perrs []ParamError
	for gi, sigs := range ep.groups {
		var raw Raw
		if gi < len(groups) {
			raw = groups[gi]
		}

		for _, sig := range sigs {
			v, verrs := readCall(ctx, target, raw, sig)
			if len(verrs) > 0 {
				perrs = append(perrs, verrs...)
				continue
			}

			args = append(args, v)
		}
	}

	if len(perrs) > 0 {
		return nil, perrs
	}

	return args, nil
}

// readCall resolves one argument. A derived reader is applied outright,
// ignoring the raw map even when it carries the same name. Otherwise the
// supplied raw value is read, or the default supplier runs when the map
// has no entry. The error side is a list to keep aggregation uniform.
func readCall(ctx context.Context, target any, raw Raw, sig *Signature) (any, []ParamError) {
	if sig.Reader.Arity() == ArityNone {
		v, err := sig.Reader.Read(ctx, sig.Name, cty.NilVal)
		if err != nil {
			return nil, []ParamError{&DefaultFailedError{Sig: sig, Cause: err}}
		}

		return v, nil
	}

	rawVal, supplied := raw[sig.Name]
	if !supplied {
		if !sig.HasDefault() {
			return nil, []ParamError{&DefaultFailedError{Sig: sig, Cause: ErrNoDefault}}
		}

		v, err := sig.Default(target)
		if err != nil {
			return nil, []ParamError{&DefaultFailedError{Sig: sig, Cause: err}}
		}

		return v, nil
	}

	v, err := sig.Reader.Read(ctx, sig.Name, rawVal)
	if err != nil {
		return nil, []ParamError{&InvalidValueError{Sig: sig, Raw: RawText(rawVal), Cause: err}}
	}

	return v, nil
}

// panicCause normalizes a recovered value into an error while keeping an
// original error value unwrappable.
func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}

	return fmt.Errorf("panic: %v", r)
}
