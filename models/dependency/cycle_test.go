package dependency

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Services graph with two separate cycles and two nodes
// that only reach a cycle
func servicesGraph() Dictionary {
	return Dictionary{
		"A": {"C"},
		"B": {"C", "D"},
		"D": {"E"},
		"E": {"F", "Q"},
		"F": {"D"},
		"G": {"L"},
		"C": {"M"},
		"M": {"A"},
	}
}

func TestFindCyclicNodes(t *testing.T) {
	tests := []struct {
		name     string
		graph    Dictionary
		expected []string
	}{
		{
			name:     "services graph",
			graph:    servicesGraph(),
			expected: []string{"A", "C", "D", "E", "F", "M"},
		},
		{
			name:     "self dependency",
			graph:    Dictionary{"A": {"A"}, "B": {"A"}},
			expected: []string{"A"},
		},
		{
			name: "first draft graph",
			graph: Dictionary{
				"A": {"A"},
				"B": {"C", "D"},
				"D": {"E"},
				"E": {"F", "Q"},
				"F": {"D"},
			},
			expected: []string{"A", "D", "E", "F"},
		},
		{
			name:     "acyclic",
			graph:    Dictionary{"A": {"B", "C"}, "B": {"C"}, "C": {"D"}},
			expected: []string{},
		},
		{
			name:     "two cycles sharing a node",
			graph:    Dictionary{"A": {"B"}, "B": {"A", "C"}, "C": {"B"}, "X": {"A"}},
			expected: []string{"A", "B", "C"},
		},
		{
			name: "cycle reached only through a visited node",
			// K reaches itself through C -> A -> B, but A is
			// first visited on the direct K -> A branch.
			graph:    Dictionary{"K": {"A", "C"}, "A": {"B"}, "B": {"K"}, "C": {"A"}},
			expected: []string{"A", "B", "C", "K"},
		},
		{
			name:     "empty",
			graph:    Dictionary{},
			expected: []string{},
		},
		{
			name:     "nil",
			graph:    nil,
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FindCyclicNodes(test.graph)
			if diff := cmp.Diff(test.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("cyclic nodes mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestFindCyclicNodesExcludesNodesReachingACycle(t *testing.T) {
	got := FindCyclicNodes(servicesGraph())
	for _, absent := range []string{"B", "G", "Q", "L"} {
		for _, node := range got {
			if node == absent {
				t.Fatalf("expected %q to be absent from %v", absent, got)
			}
		}
	}
}

func TestFindCyclicNodesOrderIndependent(t *testing.T) {
	base := servicesGraph()
	expected := FindCyclicNodes(base)
	rng := rand.New(rand.NewSource(7))

	// Relabel keys so the sorted walk order changes,
	// and shuffle each dependency list.
	for i := 0; i < 20; i++ {
		labels := []string{"A", "B", "C", "D", "E", "F", "G", "L", "M", "Q"}
		perm := rng.Perm(len(labels))
		rename := make(map[string]string, len(labels))
		back := make(map[string]string, len(labels))
		for j, label := range labels {
			renamed := strings.Repeat("n", perm[j]+1)
			rename[label] = renamed
			back[renamed] = label
		}

		permuted := make(Dictionary, len(base))
		for key, deps := range base {
			shuffled := make([]string, len(deps))
			for j, dep := range deps {
				shuffled[j] = rename[dep]
			}
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			permuted[rename[key]] = shuffled
		}

		got := make([]string, 0, len(expected))
		for _, node := range FindCyclicNodes(permuted) {
			got = append(got, back[node])
		}

		if diff := cmp.Diff(expected, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Fatalf("permutation %d changed the result (-expected +got):\n%s", i, diff)
		}
	}
}

func TestFindCyclicNodesDoesNotMutate(t *testing.T) {
	graph := servicesGraph()
	FindCyclicNodes(graph)
	if diff := cmp.Diff(servicesGraph(), graph); diff != "" {
		t.Fatalf("graph mutated (-before +after):\n%s", diff)
	}
}
