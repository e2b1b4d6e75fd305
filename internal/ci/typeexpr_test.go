package ci_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-bindgen/internal/ci"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	lookup := func(name string) (ci.Kind, bool) {
		switch name {
		case "todo_entry":
			return ci.KindRecord, true
		case "priority":
			return ci.KindEnum, true
		default:
			return 0, false
		}
	}

	tests := []struct {
		expr string
		want ci.Type
	}{
		{"i32", ci.Primitive(ci.KindInt32)},
		{"  bool ", ci.Primitive(ci.KindBoolean)},
		{"timestamp", ci.Timestamp()},
		{"optional<duration>", ci.Optional(ci.Duration())},
		{"sequence<optional<timestamp>>", ci.Sequence(ci.Optional(ci.Timestamp()))},
		{"map<string, sequence<duration>>", ci.Map(ci.Primitive(ci.KindString), ci.Sequence(ci.Duration()))},
		{"map< u8 ,map<string,bytes> >", ci.Map(ci.Primitive(ci.KindUInt8),
			ci.Map(ci.Primitive(ci.KindString), ci.Primitive(ci.KindBytes)))},
		{"Optional<todo_entry>", ci.Optional(ci.Record("todo_entry"))},
		{"sequence<priority>", ci.Sequence(ci.Enum("priority"))},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			got, err := ci.ParseType(tt.expr, lookup)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s\ngot %s", spew.Sdump(tt.want), spew.Sdump(got))
		})
	}
}

func TestParseType_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{"empty", "   ", "empty type expression"},
		{"unknown name", "sequence<person>", `unknown type "person"`},
		{"missing arg", "optional<>", "expected type name"},
		{"map arity", "map<string>", `expected ','`},
		{"unclosed", "sequence<i32", "end of input"},
		{"trailing", "i32 i64", "unexpected"},
		{"missing bracket", "optional i32", `expected '<'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ci.ParseType(tt.expr, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestType_StringRoundTrips(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{
		"sequence<optional<timestamp>>",
		"map<string, sequence<duration>>",
		"optional<map<i64, optional<f64>>>",
		"bytes",
	} {
		typ := ci.MustParseType(expr)
		assert.Equal(t, expr, typ.String())
	}
}

func TestType_Equal(t *testing.T) {
	t.Parallel()

	a := ci.Map(ci.Primitive(ci.KindString), ci.Optional(ci.Timestamp()))
	b := ci.MustParseType("map<string, optional<timestamp>>")
	c := ci.Map(ci.Primitive(ci.KindString), ci.Optional(ci.Duration()))
	d := ci.Map(ci.Primitive(ci.KindInt32), ci.Optional(ci.Timestamp()))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, ci.Record("a").Equal(ci.Record("b")))
	assert.False(t, ci.Record("a").Equal(ci.Enum("a")))
}
