package gen

import (
	"fmt"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/oracle"
)

// helperData describes one FfiConverter class for a compound type.
type helperData struct {
	Kind       string // "Optional", "Sequence" or "Map"
	Class      string // converter class name
	Label      string // C# type handled by the converter
	Inner      string // converter of the wrapped or value type
	InnerLabel string
	Key        string // converter of the map key
	KeyLabel   string
}

// collectHelpers returns one helper per distinct compound type reachable from c,
// ordered so that every helper follows the helpers it calls.
func collectHelpers(o *oracle.CodeOracle, c *ci.ComponentInterface) ([]helperData, error) {
	var (
		keys  []string
		types = make(map[string]ci.Type)
		err   error
	)

	c.IterTypes(func(t ci.Type) {
		if err != nil || !t.Kind.IsCompound() {
			return
		}

		name := o.CanonicalName(t)

		prev, seen := types[name]
		if !seen {
			types[name] = t
			keys = append(keys, name)

			return
		}

		if !prev.Equal(t) {
			err = fmt.Errorf("canonical name %q is shared by %s and %s", name, prev, t)
		}
	})

	if err != nil {
		return nil, err
	}

	order, err := topoSort(keys, func(key string) []string {
		var deps []string
		for _, child := range types[key].Children() {
			deps = append(deps, o.CanonicalName(child))
		}

		return deps
	})
	if err != nil {
		return nil, fmt.Errorf("ordering converter helpers: %w", err)
	}

	helpers := make([]helperData, 0, len(order))
	for _, key := range order {
		helpers = append(helpers, newHelper(o, c, types[key]))
	}

	return helpers, nil
}

func newHelper(o *oracle.CodeOracle, c *ci.ComponentInterface, t ci.Type) helperData {
	h := helperData{
		Kind:       t.Kind.String(),
		Class:      o.FfiConverterName(t),
		Label:      o.TypeLabel(t, c),
		Inner:      o.FfiConverterName(*t.Inner),
		InnerLabel: o.TypeLabel(*t.Inner, c),
	}

	if t.Key != nil {
		h.Key = o.FfiConverterName(*t.Key)
		h.KeyLabel = o.TypeLabel(*t.Key, c)
	}

	return h
}
