package mock

import (
	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/zclconf/go-cty/cty"
)

// RawStrings builds a raw argument group of string values, the common
// shape of transport-tokenized inputs.
func RawStrings(kv map[string]string) routing.Raw {
	raw := make(routing.Raw, len(kv))
	for k, v := range kv {
		raw[k] = cty.StringVal(v)
	}

	return raw
}
