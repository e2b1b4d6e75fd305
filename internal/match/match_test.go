package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"cs-bindgen/internal/match"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"timestamp", "timestmap", 2},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, match.Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, match.Distance(tt.b, tt.a), "Distance(%q, %q)", tt.b, tt.a)
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"todo_entry", []string{"todo", "entry"}},
		{"todo-entry", []string{"todo", "entry"}},
		{"todoEntry", []string{"todo", "Entry"}},
		{"TodoEntry", []string{"Todo", "Entry"}},
		{"HTTPServer", []string{"HTTP", "Server"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"very_high", []string{"very", "high"}},
		{"utf8Value", []string{"utf8", "Value"}},
		{"__x__", []string{"x"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, match.Words(tt.in), "Words(%q)", tt.in)
	}

	assert.Equal(t, "todoentry", match.Fold("Todo-Entry"))
}

func TestClosest(t *testing.T) {
	t.Parallel()

	known := []string{"todo_entry", "todo_list", "priority", "timestamp", "duration", "string", "i32"}

	assert.Equal(t, []string{"timestamp"}, match.Closest("timestmap", known))
	assert.Equal(t, []string{"todo_entry"}, match.Closest("TodoEntry", known))
	assert.Equal(t, []string{"todo_entry"}, match.Closest("todo_entri", known))
	assert.Equal(t, []string{"i32"}, match.Closest("i31", known))
	assert.Empty(t, match.Closest("person", known))
	assert.Empty(t, match.Closest("priority", known), "exact names are not suggestions")
	assert.Empty(t, match.Closest("x", nil))
}

func ExampleClosest() {
	fmt.Println(match.Closest("priorty", []string{"parity", "prior", "priority", "property"}))
	// Output: [priority prior]
}
