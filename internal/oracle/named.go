package oracle

import (
	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/diagnostic"
)

// namedCodeType renders enums, records and objects, which are referenced by
// their declared name.
type namedCodeType struct {
	typ ci.Type
}

func (n namedCodeType) TypeLabel(_ *ci.ComponentInterface) string {
	return ClassName(n.typ.Name)
}

func (n namedCodeType) CanonicalName() string {
	return "Type" + ClassName(n.typ.Name)
}

// DefaultValue renders enums as their zero value; records and objects are
// reference types and default to null.
func (n namedCodeType) DefaultValue(_ *ci.ComponentInterface) string {
	if n.typ.Kind == ci.KindEnum {
		return "default(" + ClassName(n.typ.Name) + ")"
	}

	return "null"
}

func (n namedCodeType) Literal(lit ci.Literal, c *ci.ComponentInterface) string {
	if n.typ.Kind == ci.KindEnum && lit.Kind == ci.LiteralEnum {
		return n.TypeLabel(c) + "." + EnumVariantName(lit.Str)
	}

	diagnostic.Invariant(n.typ.String(), lit.String(), n.typ.Kind.String()+" values have no literal form")

	return ""
}
