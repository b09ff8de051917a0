package dependency

import (
	"maps"
	"slices"
)

// FindCyclicNodes returns, sorted, every key that lies on a
// circular reference, i.e. every key that can reach itself
// through its dependencies. A key listing itself as a
// dependency is a cycle of length one.
//
// Keys are walked one at a time. Reaching the starting key
// again marks it and every key on the current path, since
// each of those both reaches and is reached by the start.
// Keys already known to be cyclic are not walked again.
func FindCyclicNodes(graph Dictionary) []string {
	cyclic := make(map[string]struct{})

	for _, key := range slices.Sorted(maps.Keys(graph)) {
		if _, prs := cyclic[key]; prs {
			continue
		}

		w := newWalk(graph, key)
		w.follow(graph[key])
		for node := range w.cyclic {
			cyclic[node] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(cyclic))
}

// walk holds the state of a single depth-first walk from
// one starting key. It is owned by the call that created it.
type walk struct {
	graph   Dictionary
	start   string
	visited map[string]struct{}
	path    []string
	cyclic  map[string]struct{}
}

func newWalk(graph Dictionary, start string) *walk {
	return &walk{
		graph:   graph,
		start:   start,
		visited: make(map[string]struct{}),
		path:    make([]string, 0, len(graph)),
		cyclic:  make(map[string]struct{}),
	}
}

func (w *walk) follow(deps []string) {
	for _, dep := range deps {
		if dep == w.start {
			w.cyclic[w.start] = struct{}{}
			for _, node := range w.path {
				w.cyclic[node] = struct{}{}
			}
			continue
		}

		if _, prs := w.visited[dep]; prs {
			continue
		}
		w.visited[dep] = struct{}{}

		next, prs := w.graph[dep]
		if !prs {
			// leaf
			continue
		}

		w.path = append(w.path, dep)
		w.follow(next)
		w.path = w.path[:len(w.path)-1]
	}
}
