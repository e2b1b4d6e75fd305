package ci

import (
	"strings"
)

// Type describes the shape of a value in the component interface.
// Types form a tree and are never mutated after construction.
type Type struct {
	Kind  Kind   // Kind of type
	Name  string // For enums, records and objects, the declared name
	Inner *Type  // For optionals and sequences, the wrapped type; for maps, the value type
	Key   *Type  // For maps, the key type
}

// Primitive returns a leaf type of the given kind.
func Primitive(kind Kind) Type {
	return Type{Kind: kind}
}

// Timestamp returns the timestamp type.
func Timestamp() Type {
	return Type{Kind: KindTimestamp}
}

// Duration returns the duration type.
func Duration() Type {
	return Type{Kind: KindDuration}
}

// Optional wraps inner into an optional type.
func Optional(inner Type) Type {
	return Type{Kind: KindOptional, Inner: &inner}
}

// Sequence wraps inner into a sequence type.
func Sequence(inner Type) Type {
	return Type{Kind: KindSequence, Inner: &inner}
}

// Map builds a map type from key and value types.
func Map(key, value Type) Type {
	return Type{Kind: KindMap, Key: &key, Inner: &value}
}

func Enum(name string) Type {
	return Type{Kind: KindEnum, Name: name}
}

func Record(name string) Type {
	return Type{Kind: KindRecord, Name: name}
}

func Object(name string) Type {
	return Type{Kind: KindObject, Name: name}
}

// Equal reports whether two types are structurally identical.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}

	return equalRef(t.Inner, o.Inner) && equalRef(t.Key, o.Key)
}

func equalRef(a, b *Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(*b)
}

// Children returns the nested types in declaration order (key before value for maps).
func (t Type) Children() []Type {
	var out []Type
	if t.Key != nil {
		out = append(out, *t.Key)
	}

	if t.Inner != nil {
		out = append(out, *t.Inner)
	}

	return out
}

// String returns the type expression for t (e.g., "sequence<optional<timestamp>>").
func (t Type) String() string {
	var sb strings.Builder
	t.writeTo(&sb)

	return sb.String()
}

func (t Type) writeTo(sb *strings.Builder) {
	switch t.Kind {
	case KindOptional, KindSequence:
		sb.WriteString(keywordOf(t.Kind))
		sb.WriteString("<")
		writeRef(sb, t.Inner)
		sb.WriteString(">")

	case KindMap:
		sb.WriteString(keywordOf(t.Kind))
		sb.WriteString("<")
		writeRef(sb, t.Key)
		sb.WriteString(", ")
		writeRef(sb, t.Inner)
		sb.WriteString(">")

	case KindEnum, KindRecord, KindObject:
		sb.WriteString(t.Name)

	default:
		if kw := keywordOf(t.Kind); kw != "" {
			sb.WriteString(kw)
			return
		}

		sb.WriteString(t.Kind.String())
	}
}

func writeRef(sb *strings.Builder, t *Type) {
	if t == nil {
		sb.WriteString("<nil>")
		return
	}

	t.writeTo(sb)
}
