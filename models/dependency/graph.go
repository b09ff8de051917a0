// Package dependency detects circular references in a map of
// services to the services they directly depend on.
package dependency

import (
	"maps"
	"slices"
)

// Dictionary maps a node key to the keys it directly depends on,
// in declaration order. A dependency that is not itself a key is
// a leaf with no further dependencies.
type Dictionary map[string][]string

// Graph is a read-only view over a Dictionary.
type Graph struct {
	dict Dictionary
}

func NewGraph(dict Dictionary) Graph {
	if dict == nil {
		dict = Dictionary{}
	}
	return Graph{dict: dict}
}

// Keys returns the graph keys in sorted order.
func (g Graph) Keys() []string {
	return slices.Sorted(maps.Keys(g.dict))
}

func (g Graph) Deps(key string) []string {
	return g.dict[key]
}

func (g Graph) HasKey(key string) bool {
	_, prs := g.dict[key]
	return prs
}

// Nodes returns every key plus every leaf referenced as a
// dependency, sorted.
func (g Graph) Nodes() []string {
	seen := make(map[string]struct{}, len(g.dict))
	for key, deps := range g.dict {
		seen[key] = struct{}{}
		for _, dep := range deps {
			seen[dep] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

func (g Graph) CyclicNodes() []string {
	return FindCyclicNodes(g.dict)
}
