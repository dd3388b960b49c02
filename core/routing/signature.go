package routing

// DefaultFunc computes a signature's fallback value against the
// invocation target. It runs lazily: at most once per invocation, and
// only when the raw map carries no entry under the signature's name.
type DefaultFunc func(target any) (any, error)

// Signature describes one declared parameter of an entry point. The
// engine treats signatures as immutable: NewEntryPoint copies them, and
// the copies it hands back out must not be modified.
type Signature struct {
	// Name keys the raw map entry. Names are unique within a group;
	// distinct groups may reuse a name.
	Name string

	// TypeLabel names the expected type for documentation and error
	// messages. It is informational only; Reader is authoritative.
	TypeLabel string

	// Doc optionally documents the parameter for introspection.
	Doc string

	// Default optionally supplies the value when the raw map has none.
	// Only consulted for readers of arity one.
	Default DefaultFunc

	// Reader converts the supplied raw value, or derives the value
	// outright when its arity is ArityNone. Required.
	Reader Reader
}

// HasDefault reports whether the signature carries a default supplier.
func (s *Signature) HasDefault() bool {
	return s.Default != nil
}
