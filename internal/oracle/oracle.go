package oracle

import (
	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/codetype"
	"cs-bindgen/internal/diagnostic"
)

// CodeOracle is the resolver for C# bindings. It is stateless and safe for
// concurrent use.
type CodeOracle struct{}

// New creates a CodeOracle.
func New() *CodeOracle {
	return &CodeOracle{}
}

// Find returns the CodeType for t. Invalid kinds are an internal invariant
// violation since every loaded type has a valid kind.
func (o *CodeOracle) Find(t ci.Type) codetype.CodeType {
	switch {
	case !t.Kind.IsValid():
		diagnostic.Invariant(t.Kind.String(), "", "no code type for kind")

	case t.Kind.IsCompound():
		return codetype.NewCompound(o, t)

	case t.Kind.IsNamed():
		return namedCodeType{typ: t}

	case t.Kind == ci.KindTimestamp:
		return codetype.NewTimestamp()

	case t.Kind == ci.KindDuration:
		return codetype.NewDuration()
	}

	if p, ok := lookupPrimitive(t.Kind); ok {
		return p
	}

	diagnostic.Invariant(t.Kind.String(), "", "no code type for kind")

	return nil
}

// TypeLabel is shorthand for o.Find(t).TypeLabel(c).
func (o *CodeOracle) TypeLabel(t ci.Type, c *ci.ComponentInterface) string {
	return o.Find(t).TypeLabel(c)
}

// CanonicalName is shorthand for o.Find(t).CanonicalName().
func (o *CodeOracle) CanonicalName(t ci.Type) string {
	return o.Find(t).CanonicalName()
}

// FfiConverterName returns the name of the generated helper class for t.
func (o *CodeOracle) FfiConverterName(t ci.Type) string {
	return "FfiConverter" + o.CanonicalName(t)
}
