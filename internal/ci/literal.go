package ci

import (
	"fmt"
	"strconv"

	"cs-bindgen/internal/common"
)

// LiteralKind represents the kind of a literal.
type LiteralKind int

const (
	LiteralUnknown       LiteralKind = iota
	LiteralNone                      // explicit "no value" for an optional
	LiteralSome                      // a value is supplied, see Literal.Default
	LiteralEmptySequence             // the empty sequence
	LiteralEmptyMap                  // the empty map
	LiteralBoolean                   // true or false
	LiteralString                    // string constant
	LiteralInt                       // signed integer constant
	LiteralUInt                      // unsigned integer constant
	LiteralFloat                     // float constant, kept in its textual form
	LiteralEnum                      // enum variant by name
)

// String returns a human-readable representation of the LiteralKind.
func (k LiteralKind) String() string {
	switch k {
	case LiteralNone:
		return "none"
	case LiteralSome:
		return "some"
	case LiteralEmptySequence:
		return "empty_sequence"
	case LiteralEmptyMap:
		return "empty_map"
	case LiteralBoolean:
		return "bool"
	case LiteralString:
		return "string"
	case LiteralInt:
		return "int"
	case LiteralUInt:
		return "uint"
	case LiteralFloat:
		return "float"
	case LiteralEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// Radix is the base an integer literal was written in.
type Radix int

const (
	RadixDecimal Radix = iota
	RadixOctal
	RadixHexadecimal
)

// Literal describes a default or constant value attached to a typed position.
type Literal struct {
	Kind    LiteralKind
	Default *DefaultValue // For LiteralSome
	Bool    bool          // For LiteralBoolean
	Str     string        // For LiteralString and LiteralFloat (textual form), LiteralEnum (variant)
	Int     int64         // For LiteralInt
	UInt    uint64        // For LiteralUInt
	Radix   Radix         // For LiteralInt and LiteralUInt
	Type    *Type         // For numeric and enum literals, the type the literal was checked against
}

// DefaultValue is the payload of a LiteralSome literal.
// A nil Literal defers to the inner type's own default.
type DefaultValue struct {
	Literal *Literal
}

// UseTypeDefault reports whether the inner type's own default should be used.
func (d DefaultValue) UseTypeDefault() bool {
	return d.Literal == nil
}

func None() Literal {
	return Literal{Kind: LiteralNone}
}

// SomeDefault returns Some(UseTypeDefault).
func SomeDefault() Literal {
	return Literal{Kind: LiteralSome, Default: &DefaultValue{}}
}

// Some returns Some(Explicit(inner)).
func Some(inner Literal) Literal {
	return Literal{Kind: LiteralSome, Default: &DefaultValue{Literal: &inner}}
}

func EmptySequence() Literal {
	return Literal{Kind: LiteralEmptySequence}
}

func EmptyMap() Literal {
	return Literal{Kind: LiteralEmptyMap}
}

func Bool(v bool) Literal {
	return Literal{Kind: LiteralBoolean, Bool: v}
}

func String(v string) Literal {
	return Literal{Kind: LiteralString, Str: v}
}

func Int(v int64, radix Radix, t Type) Literal {
	return Literal{Kind: LiteralInt, Int: v, Radix: radix, Type: &t}
}

func UInt(v uint64, radix Radix, t Type) Literal {
	return Literal{Kind: LiteralUInt, UInt: v, Radix: radix, Type: &t}
}

func Float(text string, t Type) Literal {
	return Literal{Kind: LiteralFloat, Str: text, Type: &t}
}

func EnumVariant(variant string, t Type) Literal {
	return Literal{Kind: LiteralEnum, Str: variant, Type: &t}
}

// String returns a debug representation of the literal, used in diagnostics.
func (l Literal) String() string {
	switch l.Kind {
	case LiteralSome:
		if l.Default == nil || l.Default.UseTypeDefault() {
			return "some(default)"
		}

		return "some(" + l.Default.Literal.String() + ")"
	case LiteralBoolean:
		return strconv.FormatBool(l.Bool)
	case LiteralString:
		return strconv.Quote(l.Str)
	case LiteralInt:
		return strconv.FormatInt(l.Int, 10)
	case LiteralUInt:
		return strconv.FormatUint(l.UInt, 10)
	case LiteralFloat:
		return l.Str
	case LiteralEnum:
		if l.Type != nil {
			return fmt.Sprintf("%s.%s", l.Type.Name, l.Str)
		}

		return l.Str
	default:
		return l.Kind.String()
	}
}
