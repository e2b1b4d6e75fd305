package oracle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/diagnostic"
)

// primitiveCodeType renders builtin scalar types.
type primitiveCodeType struct {
	kind         ci.Kind
	label        string
	canonical    string
	defaultValue string
	suffix       string // numeric literal suffix
}

var primitives = map[ci.Kind]primitiveCodeType{
	ci.KindInt8:    {label: "sbyte", canonical: "Int8", defaultValue: "0"},
	ci.KindUInt8:   {label: "byte", canonical: "UInt8", defaultValue: "0"},
	ci.KindInt16:   {label: "short", canonical: "Int16", defaultValue: "0"},
	ci.KindUInt16:  {label: "ushort", canonical: "UInt16", defaultValue: "0"},
	ci.KindInt32:   {label: "int", canonical: "Int32", defaultValue: "0"},
	ci.KindUInt32:  {label: "uint", canonical: "UInt32", defaultValue: "0", suffix: "u"},
	ci.KindInt64:   {label: "long", canonical: "Int64", defaultValue: "0", suffix: "L"},
	ci.KindUInt64:  {label: "ulong", canonical: "UInt64", defaultValue: "0", suffix: "UL"},
	ci.KindFloat32: {label: "float", canonical: "Float", defaultValue: "0.0f", suffix: "f"},
	ci.KindFloat64: {label: "double", canonical: "Double", defaultValue: "0.0"},
	ci.KindBoolean: {label: "bool", canonical: "Boolean", defaultValue: "false"},
	ci.KindString:  {label: "string", canonical: "String", defaultValue: `""`},
	ci.KindBytes:   {label: "byte[]", canonical: "ByteArray", defaultValue: "null"},
}

func lookupPrimitive(kind ci.Kind) (primitiveCodeType, bool) {
	p, ok := primitives[kind]
	p.kind = kind

	return p, ok
}

func (p primitiveCodeType) TypeLabel(_ *ci.ComponentInterface) string {
	return p.label
}

func (p primitiveCodeType) CanonicalName() string {
	return p.canonical
}

func (p primitiveCodeType) DefaultValue(_ *ci.ComponentInterface) string {
	return p.defaultValue
}

func (p primitiveCodeType) Literal(lit ci.Literal, _ *ci.ComponentInterface) string {
	switch {
	case p.kind == ci.KindBoolean && lit.Kind == ci.LiteralBoolean:
		return strconv.FormatBool(lit.Bool)

	case p.kind == ci.KindString && lit.Kind == ci.LiteralString:
		return quoteString(lit.Str)

	case p.kind.IsInteger() && lit.Kind == ci.LiteralInt:
		return formatInt(lit.Int, lit.Radix) + p.suffix

	case p.kind.IsInteger() && lit.Kind == ci.LiteralUInt:
		return formatUint(lit.UInt, lit.Radix) + p.suffix

	case p.kind.IsFloat() && lit.Kind == ci.LiteralFloat:
		return lit.Str + p.suffix
	}

	diagnostic.Invariant(ci.Primitive(p.kind).String(), lit.String(), "literal does not match the type")

	return ""
}

// formatInt renders a signed integer. C# has no octal literals, so octal
// values are written in decimal.
func formatInt(v int64, radix ci.Radix) string {
	if radix != ci.RadixHexadecimal {
		return strconv.FormatInt(v, 10)
	}

	if v < 0 {
		// -v overflows for MinInt64; format through uint64.
		return "-0x" + strconv.FormatUint(uint64(-(v+1))+1, 16)
	}

	return "0x" + strconv.FormatInt(v, 16)
}

func formatUint(v uint64, radix ci.Radix) string {
	if radix == ci.RadixHexadecimal {
		return "0x" + strconv.FormatUint(v, 16)
	}

	return strconv.FormatUint(v, 10)
}

// quoteString renders s as a regular C# string literal.
func quoteString(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if !unicode.IsPrint(r) {
				writeEscapedRune(&sb, r)
				continue
			}

			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

func writeEscapedRune(sb *strings.Builder, r rune) {
	if r > 0xFFFF {
		fmt.Fprintf(sb, `\U%08X`, r)
		return
	}

	fmt.Fprintf(sb, `\u%04X`, r)
}
