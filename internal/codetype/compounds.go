package codetype

import (
	"fmt"

	"cs-bindgen/internal/ci"
)

// Compound realizes the types that wrap other types: optionals, sequences and maps.
// All nested rendering goes back through the resolver.
type Compound struct {
	resolver Resolver
	kind     ci.Kind
	key      ci.Type // maps only
	inner    ci.Type // wrapped type, or the map value type
}

// NewOptional realizes optional<inner>.
func NewOptional(r Resolver, inner ci.Type) *Compound {
	return &Compound{resolver: r, kind: ci.KindOptional, inner: inner}
}

// NewSequence realizes sequence<inner>.
func NewSequence(r Resolver, inner ci.Type) *Compound {
	return &Compound{resolver: r, kind: ci.KindSequence, inner: inner}
}

// NewMap realizes map<key, value>.
func NewMap(r Resolver, key, value ci.Type) *Compound {
	return &Compound{resolver: r, kind: ci.KindMap, key: key, inner: value}
}

// NewCompound realizes t, which must be an optional, sequence or map.
func NewCompound(r Resolver, t ci.Type) *Compound {
	switch t.Kind {
	case ci.KindOptional:
		return NewOptional(r, *t.Inner)
	case ci.KindSequence:
		return NewSequence(r, *t.Inner)
	case ci.KindMap:
		return NewMap(r, *t.Key, *t.Inner)
	default:
		panic(fmt.Sprintf("codetype: %s is not a compound type", t.Kind))
	}
}

// Type returns the realized type.
func (c *Compound) Type() ci.Type {
	switch c.kind {
	case ci.KindOptional:
		return ci.Optional(c.inner)
	case ci.KindSequence:
		return ci.Sequence(c.inner)
	default:
		return ci.Map(c.key, c.inner)
	}
}

func (c *Compound) TypeLabel(iface *ci.ComponentInterface) string {
	inner := c.resolver.Find(c.inner).TypeLabel(iface)

	switch c.kind {
	case ci.KindOptional:
		return inner + "?"
	case ci.KindSequence:
		return inner + "[]"
	default:
		return fmt.Sprintf("Dictionary<%s, %s>", c.resolver.Find(c.key).TypeLabel(iface), inner)
	}
}

func (c *Compound) CanonicalName() string {
	inner := c.resolver.Find(c.inner).CanonicalName()

	switch c.kind {
	case ci.KindOptional:
		return "Optional" + inner
	case ci.KindSequence:
		return "Sequence" + inner
	default:
		// Key and value both take part in the name.
		return "Dictionary" + c.resolver.Find(c.key).CanonicalName() + inner
	}
}

// Literal renders lit against the wrapped type. For maps only the value type
// takes part; keys never carry literal information.
func (c *Compound) Literal(lit ci.Literal, iface *ci.ComponentInterface) string {
	return renderLiteral(c.resolver, lit, c.inner, iface)
}

func (c *Compound) DefaultValue(_ *ci.ComponentInterface) string {
	return null
}
