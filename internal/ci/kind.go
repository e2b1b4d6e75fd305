package ci

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt8
	KindUInt8
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat32
	KindFloat64
	KindBoolean
	KindString
	KindBytes
	KindTimestamp
	KindDuration
	KindOptional
	KindSequence
	KindMap
	KindEnum
	KindRecord
	KindObject

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUInt8, KindUInt16, KindUInt32, KindUInt64:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsCompound reports whether types of this kind wrap nested types.
func (k Kind) IsCompound() bool {
	switch k {
	default:
		return false
	case KindOptional, KindSequence, KindMap:
		return true
	}
}

// IsNamed reports whether types of this kind refer to a declaration by name.
func (k Kind) IsNamed() bool {
	switch k {
	default:
		return false
	case KindEnum, KindRecord, KindObject:
		return true
	}
}
