package codetype

import "cs-bindgen/internal/ci"

// CodeType renders one type of the component interface.
type CodeType interface {
	// TypeLabel returns the C# type as written in generated source.
	TypeLabel(c *ci.ComponentInterface) string
	// CanonicalName returns the mangled name; structurally equal types share it.
	CanonicalName() string
	// Literal renders lit as a C# expression of this type.
	Literal(lit ci.Literal, c *ci.ComponentInterface) string
	// DefaultValue renders the value used when none is supplied.
	DefaultValue(c *ci.ComponentInterface) string
}

// Resolver finds the CodeType responsible for a type. It must be total over every kind.
type Resolver interface {
	Find(t ci.Type) CodeType
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(t ci.Type) CodeType

// Find implements Resolver.
func (f ResolverFunc) Find(t ci.Type) CodeType {
	return f(t)
}
