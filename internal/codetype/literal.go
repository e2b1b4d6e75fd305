package codetype

import "cs-bindgen/internal/ci"

// null is the C# null literal.
const null = "null"

// renderLiteral is the literal dispatch shared by the compound code types.
// inner is the type the literal is rendered against: the wrapped type of
// optionals and sequences, the value type of maps.
func renderLiteral(r Resolver, lit ci.Literal, inner ci.Type, c *ci.ComponentInterface) string {
	switch lit.Kind {
	case ci.LiteralNone:
		return null

	case ci.LiteralSome:
		if lit.Default == nil || lit.Default.UseTypeDefault() {
			return r.Find(inner).DefaultValue(c)
		}

		return r.Find(inner).Literal(*lit.Default.Literal, c)

	case ci.LiteralEmptySequence, ci.LiteralEmptyMap:
		// C# default parameters must be compile-time constants, so empty
		// collections degrade to null.
		return null

	default:
		return r.Find(inner).Literal(lit, c)
	}
}
