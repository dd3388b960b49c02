package routing

import (
	"errors"
	"fmt"
	"strings"
)

// Classification sentinels. Every non-nil error returned by
// [EntryPoint.Invoke] matches exactly one of the first three via
// [errors.Is]; the remaining two classify the entries of an
// [InvalidArgumentsError].
var (
	// ErrMismatchedArguments marks a structural mismatch between the
	// first raw map and the first argument group, detected before any
	// value is read.
	ErrMismatchedArguments = errors.New("mismatched arguments")

	// ErrInvalidArguments marks an invocation in which at least one
	// argument failed to resolve; the bound call did not run.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvocation marks a fault raised by the bound call itself after
	// every argument resolved, or a panic escaping a reader or default
	// supplier.
	ErrInvocation = errors.New("entry point invocation failed")

	// ErrInvalidArgumentValue marks a supplied raw value the signature's
	// reader could not convert.
	ErrInvalidArgumentValue = errors.New("invalid argument value")

	// ErrDefaultFailed marks a failed fallback: the default supplier
	// returned an error, no supplier exists for an absent argument, or a
	// derived read failed.
	ErrDefaultFailed = errors.New("default value failed")

	// ErrNoDefault is the cause recorded when an argument is absent from
	// the raw map and its signature declares no default supplier.
	ErrNoDefault = errors.New("argument not supplied and no default defined")
)

// ParamError is a single argument's resolution failure: either an
// invalid supplied value or a failed default computation. The two
// implementations are [InvalidValueError] and [DefaultFailedError].
type ParamError interface {
	error

	// Arg returns the signature of the failing argument. The pointer is
	// the descriptor's own, stable across invocations.
	Arg() *Signature

	paramError()
}

// InvalidValueError reports a supplied raw value the signature's reader
// rejected.
type InvalidValueError struct {
	// Sig is the failing argument's signature.
	Sig *Signature
	// Raw is the textual form of the value as supplied, per [RawText].
	Raw string
	// Cause is the reader's conversion error.
	Cause error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%v: '%s': argument '%s' of type %s: %v",
		ErrInvalidArgumentValue, e.Raw, e.Sig.Name, e.Sig.TypeLabel, e.Cause)
}

// Is makes the error match ErrInvalidArgumentValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidArgumentValue
}

// Unwrap exposes the reader's conversion error.
func (e *InvalidValueError) Unwrap() error {
	return e.Cause
}

// Arg returns the failing argument's signature.
func (e *InvalidValueError) Arg() *Signature { return e.Sig }

func (e *InvalidValueError) paramError() {}

// DefaultFailedError reports a failed fallback for an argument the raw
// map did not supply, or a failed derived read. No raw text is recorded
// because no raw value existed.
type DefaultFailedError struct {
	// Sig is the failing argument's signature.
	Sig *Signature
	// Cause is the supplier's or reader's error, or [ErrNoDefault].
	Cause error
}

func (e *DefaultFailedError) Error() string {
	return fmt.Sprintf("%v: argument '%s' of type %s: %v",
		ErrDefaultFailed, e.Sig.Name, e.Sig.TypeLabel, e.Cause)
}

// Is makes the error match ErrDefaultFailed.
func (e *DefaultFailedError) Is(target error) bool {
	return target == ErrDefaultFailed
}

// Unwrap exposes the underlying cause.
func (e *DefaultFailedError) Unwrap() error {
	return e.Cause
}

// Arg returns the failing argument's signature.
func (e *DefaultFailedError) Arg() *Signature { return e.Sig }

func (e *DefaultFailedError) paramError() {}

// MismatchedArgumentsError reports the structural pre-check failure of
// the first raw map against the first argument group. Nothing was read
// and the bound call never ran.
type MismatchedArgumentsError struct {
	// Missing lists the first group's signatures that require a raw
	// value (arity one, no default) but received none, in declaration
	// order. The pointers are the descriptor's own.
	Missing []*Signature
	// Unknown lists the first map's keys no first-group signature
	// declares, sorted lexicographically.
	Unknown []string
}

func (e *MismatchedArgumentsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, sig := range e.Missing {
		names[i] = sig.Name
	}
	return fmt.Sprintf("%v: missing [%s], unknown [%s]",
		ErrMismatchedArguments, strings.Join(names, ", "), strings.Join(e.Unknown, ", "))
}

// Is makes the error match ErrMismatchedArguments.
func (e *MismatchedArgumentsError) Is(target error) bool {
	return target == ErrMismatchedArguments
}

// InvalidArgumentsError aggregates every argument resolution failure of
// one invocation, in declaration order across all groups. Resolution
// never stops at the first failure, so the list reports every problem at
// once.
type InvalidArgumentsError struct {
	Errors []ParamError
}

func (e *InvalidArgumentsError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, pe := range e.Errors {
		msgs[i] = pe.Error()
	}
	return fmt.Sprintf("%v: %s", ErrInvalidArguments, strings.Join(msgs, "; "))
}

// Is makes the error match ErrInvalidArguments.
func (e *InvalidArgumentsError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// Unwrap exposes the per-argument failures to errors.Is and errors.As,
// so callers can probe for ErrInvalidArgumentValue or ErrDefaultFailed
// without walking Errors themselves.
func (e *InvalidArgumentsError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, pe := range e.Errors {
		errs[i] = pe
	}
	return errs
}

// InvocationError wraps a fault raised by the bound call: a returned
// error or a recovered panic. The original cause is preserved, not
// reinterpreted.
type InvocationError struct {
	Cause error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvocation, e.Cause)
}

// Is makes the error match ErrInvocation.
func (e *InvocationError) Is(target error) bool {
	return target == ErrInvocation
}

// Unwrap exposes the original fault.
func (e *InvocationError) Unwrap() error {
	return e.Cause
}
