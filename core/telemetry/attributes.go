package telemetry

import (
	"errors"

	"github.com/anoideaopen/entrypoint/core/routing"
	"go.opentelemetry.io/otel/attribute"
)

type OutcomeNum int

func (o OutcomeNum) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeMismatchedArguments:
		return "mismatched_arguments"
	case OutcomeInvalidArguments:
		return "invalid_arguments"
	case OutcomeInvocationError:
		return "invocation_error"
	case OutcomeUnresolved:
		fallthrough
	default:
		return "unresolved"
	}
}

const (
	OutcomeUnresolved OutcomeNum = iota
	OutcomeSuccess
	OutcomeMismatchedArguments
	OutcomeInvalidArguments
	OutcomeInvocationError
)

// OutcomeOf classifies an invocation result into its outcome number.
// Errors outside the engine's taxonomy, such as resolution of an
// unregistered name, classify as OutcomeUnresolved.
func OutcomeOf(err error) OutcomeNum {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, routing.ErrMismatchedArguments):
		return OutcomeMismatchedArguments
	case errors.Is(err, routing.ErrInvalidArguments):
		return OutcomeInvalidArguments
	case errors.Is(err, routing.ErrInvocation):
		return OutcomeInvocationError
	default:
		return OutcomeUnresolved
	}
}

func Outcome(o OutcomeNum) attribute.KeyValue {
	return attribute.String("outcome", o.String())
}

func EntryPoint(name string) attribute.KeyValue {
	return attribute.String("entry_point", name)
}

func InvocationID(id string) attribute.KeyValue {
	return attribute.String("invocation_id", id)
}

func ArgumentGroups(n int) attribute.KeyValue {
	return attribute.Int("argument_groups", n)
}
