package gen

import (
	"errors"
	"fmt"
	"sort"
)

// errCycle is returned when helper dependencies form a cycle.
var errCycle = errors.New("cycle detected")

// topoSort orders keys so that every key comes after the keys it depends on.
//
// deps(k) yields the keys that must precede k; keys not present in keys are
// ignored, since they are provided elsewhere. The result is deterministic:
// when several keys are ready, the one listed first in keys wins.
func topoSort(keys []string, deps func(key string) []string) ([]string, error) {
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, dup := index[k]; dup {
			return nil, fmt.Errorf("duplicate key %q", k)
		}

		index[k] = i
	}

	indeg := make([]int, len(keys))
	out := make([][]int, len(keys))

	for i, k := range keys {
		for _, d := range deps(k) {
			j, ok := index[d]
			if !ok {
				continue
			}

			indeg[i]++
			out[j] = append(out[j], i)
		}
	}

	var ready []int

	for i := range keys {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]string, 0, len(keys))

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, keys[i])

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted by input position.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != len(keys) {
		return nil, errCycle
	}

	return order, nil
}
