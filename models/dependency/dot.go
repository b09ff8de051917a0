package dependency

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOT builds a Graphviz document of the graph. Cyclic nodes are
// filled red and edges joining two cyclic nodes are drawn bold.
func DOT(g Graph, cyclic []string) string {
	isCyclic := make(map[string]bool, len(cyclic))
	for _, node := range cyclic {
		isCyclic[node] = true
	}

	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\"];\n")

	for _, node := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", node)}
		if isCyclic[node] {
			attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=\"#d75f5f\"", "fontcolor=white")
		} else if !g.HasKey(node) {
			attrs = append(attrs, "style=\"rounded,dashed\"")
		}
		fmt.Fprintf(&b, "  %q [%s];\n", node, strings.Join(attrs, ", "))
	}

	for _, key := range g.Keys() {
		for _, dep := range g.Deps(key) {
			if isCyclic[key] && isCyclic[dep] {
				fmt.Fprintf(&b, "  %q -> %q [penwidth=2, color=\"#d75f5f\"];\n", key, dep)
				continue
			}
			fmt.Fprintf(&b, "  %q -> %q;\n", key, dep)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// RenderSVG renders a DOT document to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
