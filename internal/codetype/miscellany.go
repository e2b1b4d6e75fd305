package codetype

import (
	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/diagnostic"
)

// Fixed realizes types with a fixed C# identity and no nested types.
type Fixed struct {
	kind         ci.Kind
	label        string
	canonical    string
	defaultValue string
}

// NewTimestamp realizes timestamps as System.DateTime.
func NewTimestamp() *Fixed {
	return &Fixed{
		kind:         ci.KindTimestamp,
		label:        "DateTime",
		canonical:    "Timestamp",
		defaultValue: "default(DateTime)",
	}
}

// NewDuration realizes durations as System.TimeSpan.
func NewDuration() *Fixed {
	return &Fixed{
		kind:         ci.KindDuration,
		label:        "TimeSpan",
		canonical:    "Duration",
		defaultValue: "default(TimeSpan)",
	}
}

func (f *Fixed) TypeLabel(_ *ci.ComponentInterface) string {
	return f.label
}

func (f *Fixed) CanonicalName() string {
	return f.canonical
}

// Literal always panics with a *diagnostic.InvariantError. Interfaces never
// attach a literal to a bare timestamp or duration; defaults for these types
// reach DefaultValue through an enclosing optional.
func (f *Fixed) Literal(lit ci.Literal, _ *ci.ComponentInterface) string {
	diagnostic.Invariant(ci.Primitive(f.kind).String(), lit.String(), f.label+" has no literal form")

	return ""
}

// DefaultValue returns the zero value; DateTime and TimeSpan are value types.
func (f *Fixed) DefaultValue(_ *ci.ComponentInterface) string {
	return f.defaultValue
}
