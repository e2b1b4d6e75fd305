package codetype_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/codetype"
	"cs-bindgen/internal/diagnostic"
)

// opaqueLeaf stands in for the primitive code types, which live outside this package.
type opaqueLeaf struct {
	name string
}

func (l opaqueLeaf) TypeLabel(*ci.ComponentInterface) string { return l.name }
func (l opaqueLeaf) CanonicalName() string                   { return l.name }
func (l opaqueLeaf) DefaultValue(*ci.ComponentInterface) string {
	return "default(" + l.name + ")"
}

func (l opaqueLeaf) Literal(lit ci.Literal, _ *ci.ComponentInterface) string {
	return l.name + ":" + lit.String()
}

var stub codetype.Resolver

func init() {
	stub = codetype.ResolverFunc(func(t ci.Type) codetype.CodeType {
		switch t.Kind {
		case ci.KindOptional, ci.KindSequence, ci.KindMap:
			return codetype.NewCompound(stub, t)
		case ci.KindTimestamp:
			return codetype.NewTimestamp()
		case ci.KindDuration:
			return codetype.NewDuration()
		default:
			return opaqueLeaf{name: t.Kind.String()}
		}
	})
}

var (
	str   = ci.Primitive(ci.KindString)
	i32   = ci.Primitive(ci.KindInt32)
	iface = ci.NewComponentInterface("test")
)

func allLiterals() []ci.Literal {
	return []ci.Literal{
		ci.None(),
		ci.SomeDefault(),
		ci.Some(ci.Int(1, ci.RadixDecimal, i32)),
		ci.EmptySequence(),
		ci.EmptyMap(),
		ci.Bool(true),
		ci.String("x"),
		ci.Int(-4, ci.RadixDecimal, i32),
		ci.UInt(4, ci.RadixHexadecimal, ci.Primitive(ci.KindUInt32)),
		ci.Float("1.5", ci.Primitive(ci.KindFloat64)),
		ci.EnumVariant("red", ci.Enum("color")),
	}
}

func TestEndToEndExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		typ       ci.Type
		label     string
		canonical string
	}{
		{"sequence of optional timestamp", ci.Sequence(ci.Optional(ci.Timestamp())), "DateTime?[]", "SequenceOptionalTimestamp"},
		{"map of string to durations", ci.Map(str, ci.Sequence(ci.Duration())), "Dictionary<String, TimeSpan[]>", "DictionaryStringSequenceDuration"},
		{"optional duration", ci.Optional(ci.Duration()), "TimeSpan?", "OptionalDuration"},
		{"nested maps", ci.Map(i32, ci.Map(str, ci.Optional(i32))), "Dictionary<Int32, Dictionary<String, Int32?>>", "DictionaryInt32DictionaryStringOptionalInt32"},
		{"timestamp", ci.Timestamp(), "DateTime", "Timestamp"},
		{"duration", ci.Duration(), "TimeSpan", "Duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ct := stub.Find(tt.typ)
			assert.Equal(t, tt.label, ct.TypeLabel(iface))
			assert.Equal(t, tt.canonical, ct.CanonicalName())
		})
	}

	assert.Equal(t, "default(TimeSpan)", stub.Find(ci.Optional(ci.Duration())).Literal(ci.SomeDefault(), iface))
	assert.Equal(t, "null", stub.Find(ci.Optional(str)).Literal(ci.EmptyMap(), iface))
}

func TestDefaultValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", stub.Find(ci.Optional(ci.Timestamp())).DefaultValue(iface))
	assert.Equal(t, "null", stub.Find(ci.Sequence(i32)).DefaultValue(iface))
	assert.Equal(t, "null", stub.Find(ci.Map(str, i32)).DefaultValue(iface))
	assert.Equal(t, "default(DateTime)", stub.Find(ci.Timestamp()).DefaultValue(iface))
	assert.Equal(t, "default(TimeSpan)", stub.Find(ci.Duration()).DefaultValue(iface))
}

func TestOptional_NullCollapse(t *testing.T) {
	t.Parallel()

	for _, inner := range []ci.Type{str, i32, ci.Timestamp(), ci.Duration(), ci.Sequence(str), ci.Map(str, i32)} {
		ct := stub.Find(ci.Optional(inner))

		for _, lit := range []ci.Literal{ci.None(), ci.EmptySequence(), ci.EmptyMap()} {
			assert.Equal(t, "null", ct.Literal(lit, iface), "%s with %s", inner, lit)
		}
	}
}

func TestOptional_DefaultForwarding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  ci.Type
		lit  ci.Literal
		want string
	}{
		{ci.Optional(ci.Timestamp()), ci.SomeDefault(), "default(DateTime)"},
		{ci.Optional(ci.Duration()), ci.SomeDefault(), "default(TimeSpan)"},
		{ci.Optional(i32), ci.SomeDefault(), "default(Int32)"},
		{ci.Optional(ci.Sequence(ci.Timestamp())), ci.SomeDefault(), "null"},
		{ci.Optional(ci.Optional(ci.Duration())), ci.Some(ci.SomeDefault()), "default(TimeSpan)"},
		{ci.Optional(i32), ci.Some(ci.Int(7, ci.RadixDecimal, i32)), "Int32:7"},
		{ci.Optional(str), ci.String("x"), `String:"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.lit.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, stub.Find(tt.typ).Literal(tt.lit, iface))
		})
	}
}

func TestSequence_SharesDispatch(t *testing.T) {
	t.Parallel()

	seq := stub.Find(ci.Sequence(i32))
	opt := stub.Find(ci.Optional(i32))

	for _, lit := range allLiterals() {
		assert.Equal(t, opt.Literal(lit, iface), seq.Literal(lit, iface), "literal %s", lit)
	}
}

func TestMap_LiteralUsesValueTypeOnly(t *testing.T) {
	t.Parallel()

	byString := stub.Find(ci.Map(str, ci.Optional(i32)))
	byInt := stub.Find(ci.Map(i32, ci.Optional(i32)))

	assert.NotEqual(t, byString.CanonicalName(), byInt.CanonicalName())

	for _, lit := range allLiterals() {
		assert.Equal(t, byString.Literal(lit, iface), byInt.Literal(lit, iface), "literal %s", lit)
	}

	assert.Equal(t, "default(TimeSpan)", stub.Find(ci.Map(str, ci.Duration())).Literal(ci.SomeDefault(), iface))
	assert.Equal(t, "default(TimeSpan)", stub.Find(ci.Map(i32, ci.Duration())).Literal(ci.SomeDefault(), iface))

	// Only the value differs.
	assert.NotEqual(t,
		stub.Find(ci.Map(str, i32)).CanonicalName(),
		stub.Find(ci.Map(str, str)).CanonicalName())
}

func TestFixed_LiteralIsFatal(t *testing.T) {
	t.Parallel()

	for _, typ := range []ci.Type{ci.Timestamp(), ci.Duration()} {
		ct := stub.Find(typ)

		for _, lit := range allLiterals() {
			func() {
				defer func() {
					r := recover()
					require.NotNil(t, r, "%s with %s did not panic", typ, lit)

					err, ok := r.(*diagnostic.InvariantError)
					require.True(t, ok, "unexpected panic value %s", spew.Sdump(r))
					assert.Equal(t, typ.String(), err.Type)
					assert.Equal(t, lit.String(), err.Literal)
				}()

				ct.Literal(lit, iface)
			}()
		}
	}

	assert.PanicsWithError(t,
		"internal invariant violated: cannot render literal none for timestamp: DateTime has no literal form",
		func() { codetype.NewTimestamp().Literal(ci.None(), iface) })
}

func TestOptional_ExplicitLiteralOnTimestampIsFatal(t *testing.T) {
	t.Parallel()

	ct := stub.Find(ci.Optional(ci.Timestamp()))

	assert.Panics(t, func() {
		ct.Literal(ci.Some(ci.None()), iface)
	})
}

// trees returns every type built from leaves with at most depth levels of nesting.
func trees(depth int, leaves []ci.Type) []ci.Type {
	if depth == 1 {
		return leaves
	}

	smaller := trees(depth-1, leaves)
	out := append([]ci.Type{}, leaves...)

	for _, t := range smaller {
		out = append(out, ci.Optional(t), ci.Sequence(t))
	}

	for _, k := range smaller {
		for _, v := range smaller {
			out = append(out, ci.Map(k, v))
		}
	}

	return out
}

func TestCanonicalName_UniqueAndStable(t *testing.T) {
	t.Parallel()

	all := trees(3, []ci.Type{str, i32, ci.Timestamp(), ci.Duration()})
	require.Len(t, all, 844)

	seen := make(map[string]ci.Type, len(all))

	for _, typ := range all {
		name := stub.Find(typ).CanonicalName()
		require.Equal(t, name, stub.Find(typ).CanonicalName(), "unstable name for %s", typ)

		if prev, ok := seen[name]; ok {
			require.True(t, prev.Equal(typ), "%q is shared by %s and %s", name, prev, typ)
		}

		seen[name] = typ
	}

	assert.Len(t, seen, len(all))
}

func TestNewCompound_RejectsLeaves(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { codetype.NewCompound(stub, ci.Timestamp()) })

	m := codetype.NewMap(stub, str, i32)
	assert.True(t, ci.Map(str, i32).Equal(m.Type()))
	assert.True(t, ci.Optional(i32).Equal(codetype.NewOptional(stub, i32).Type()))
}
