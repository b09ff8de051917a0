package dependency

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraphNodes(t *testing.T) {
	g := NewGraph(servicesGraph())

	expectedKeys := []string{"A", "B", "C", "D", "E", "F", "G", "M"}
	if diff := cmp.Diff(expectedKeys, g.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-expected +got):\n%s", diff)
	}

	expectedNodes := []string{"A", "B", "C", "D", "E", "F", "G", "L", "M", "Q"}
	if diff := cmp.Diff(expectedNodes, g.Nodes()); diff != "" {
		t.Fatalf("nodes mismatch (-expected +got):\n%s", diff)
	}

	if g.HasKey("Q") {
		t.Fatal("Q is a leaf, not a key")
	}
	if diff := cmp.Diff([]string{"C", "D"}, g.Deps("B")); diff != "" {
		t.Fatalf("deps mismatch (-expected +got):\n%s", diff)
	}
}

func TestNilGraph(t *testing.T) {
	g := NewGraph(nil)
	if len(g.Keys()) != 0 || len(g.Nodes()) != 0 || len(g.CyclicNodes()) != 0 {
		t.Fatal("expected an empty graph")
	}
}

func TestDOT(t *testing.T) {
	g := NewGraph(servicesGraph())
	dot := DOT(g, g.CyclicNodes())

	tests := []struct {
		name     string
		contains string
	}{
		{name: "cyclic node filled", contains: `"A" [label="A", style="rounded,filled"`},
		{name: "leaf dashed", contains: `"Q" [label="Q", style="rounded,dashed"]`},
		{name: "plain key", contains: `"B" [label="B"];`},
		{name: "cycle edge bold", contains: `"F" -> "D" [penwidth=2`},
		{name: "plain edge", contains: `"B" -> "C";`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !strings.Contains(dot, test.contains) {
				t.Fatalf("expected DOT to contain %s\ngot:\n%s", test.contains, dot)
			}
		})
	}

	if !strings.HasPrefix(dot, "digraph dependencies {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("malformed DOT document:\n%s", dot)
	}
}
