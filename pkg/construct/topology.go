package construct

import (
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
)

// topologicalSort performs a stable Kahn's sort over the given dependency
// map. With an adjacency map (edges point at dependencies) the result orders
// dependencies before dependents. The less function breaks ties between
// vertices that become ready at the same time.
func topologicalSort[K comparable](deps map[K]map[K]graph.Edge[K], less func(K, K) bool) ([]K, error) {
	if len(deps) == 0 {
		return nil, nil
	}

	remaining := make(map[K]map[K]struct{}, len(deps))
	for vertex, vdeps := range deps {
		pending := make(map[K]struct{}, len(vdeps))
		for dep := range vdeps {
			pending[dep] = struct{}{}
		}
		remaining[vertex] = pending
	}

	var queue []K
	for vertex, pending := range remaining {
		if len(pending) == 0 {
			queue = append(queue, vertex)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return less(queue[i], queue[j]) })

	order := make([]K, 0, len(deps))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)
		delete(remaining, current)

		var ready []K
		for vertex, pending := range remaining {
			if _, ok := pending[current]; !ok {
				continue
			}
			delete(pending, current)
			if len(pending) == 0 {
				ready = append(ready, vertex)
			}
		}
		sort.Slice(ready, func(i, j int) bool { return less(ready[i], ready[j]) })
		queue = append(queue, ready...)
	}

	if len(order) != len(deps) {
		return nil, fmt.Errorf("graph contains a cycle: %d of %d vertices unsortable", len(remaining), len(deps))
	}
	return order, nil
}
