package readers

import (
	"context"
	"fmt"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"
)

// UUID returns a reader for UUID arguments in any textual form
// uuid.Parse accepts. The resolved value is a uuid.UUID.
func UUID() routing.Reader { return uuidReader{} }

type uuidReader struct{}

func (uuidReader) Arity() int { return routing.ArityOne }

func (uuidReader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.String)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(v.AsString())
	if err != nil {
		return nil, err
	}

	return id, nil
}

// Base58Bytes returns a reader for base58-encoded byte arguments, the
// usual encoding for addresses and keys. Only canonical encodings are
// accepted: the decoded bytes must encode back to the original string.
// The resolved value is a []byte.
func Base58Bytes() routing.Reader { return base58Reader{} }

type base58Reader struct{}

func (base58Reader) Arity() int { return routing.ArityOne }

func (base58Reader) Read(_ context.Context, _ string, raw cty.Value) (any, error) {
	v, err := prim(raw, cty.String)
	if err != nil {
		return nil, err
	}

	s := v.AsString()

	decoded := base58.Decode(s)
	if base58.Encode(decoded) != s {
		return nil, fmt.Errorf("'%s' is not a canonical base58 string", s)
	}

	return decoded, nil
}
