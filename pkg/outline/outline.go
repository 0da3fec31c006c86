// Package outline turns a project configuration into a Graphviz diagram
// of its structure: the project, its floor plans, the reusable element
// sets they inherit, and per-kind element counts.
package outline

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/Nikolay-Lysenko/renovation/pkg/config"
	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
)

// Options configures outline generation.
type Options struct {
	// Detailed includes extent and scale in floor plan labels.
	// When false, only titles are shown.
	Detailed bool
}

// ToDOT converts a configuration to Graphviz DOT format. The resulting
// DOT string can be rendered with [RenderSVG] or [RenderPNG]. Reusable
// element sets appear once with dashed outlines, shared by every plan
// that inherits them.
func ToDOT(cfg *config.Config, name string, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if name == "" {
		name = "project"
	}
	rootLabel := fmt.Sprintf("%s\n%d floor plans", name, len(cfg.FloorPlans))
	fmt.Fprintf(&buf, "  \"project\" [label=%q, fillcolor=lightsteelblue];\n", rootLabel)

	for _, set := range slices.Sorted(maps.Keys(cfg.ReusableElements)) {
		label := fmt.Sprintf("%s\nelements: %d", set, len(cfg.ReusableElements[set]))
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", "set:"+set, label)
	}

	var edges []string
	for i, fp := range cfg.FloorPlans {
		planID := fmt.Sprintf("plan%d", i)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", planID, planLabel(cfg, fp, i, opts))
		edges = append(edges, fmt.Sprintf("  \"project\" -> %q;", planID))

		for _, set := range fp.InheritedElements {
			edges = append(edges, fmt.Sprintf("  %q -> %q;", planID, "set:"+set))
		}

		counts := kindCounts(fp.Elements)
		for _, kind := range slices.Sorted(maps.Keys(counts)) {
			kindID := planID + ":" + kind
			fmt.Fprintf(&buf, "  %q [label=%q, fontsize=11];\n", kindID, fmt.Sprintf("%s: %d", kind, counts[kind]))
			edges = append(edges, fmt.Sprintf("  %q -> %q;", planID, kindID))
		}
	}

	buf.WriteString("\n")
	for _, edge := range edges {
		buf.WriteString(edge)
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.String()
}

func planLabel(cfg *config.Config, fp config.FloorPlan, index int, opts Options) string {
	title := fmt.Sprintf("floor plan %d", index)
	if fp.Title != nil && fp.Title.Text != "" {
		title = fp.Title.Text
	}
	if !opts.Detailed {
		return title
	}
	layout := fp.Layout
	if layout == nil {
		layout = cfg.DefaultLayout
	}
	if layout == nil {
		return title
	}
	l := *layout
	if err := l.ValidateAndSetDefaults(); err != nil {
		return title
	}
	return fmt.Sprintf("%s\n%g x %g m, scale %d:%d", title,
		l.TopRightCorner.X-l.BottomLeftCorner.X,
		l.TopRightCorner.Y-l.BottomLeftCorner.Y,
		l.ScaleNumerator, l.ScaleDenominator)
}

func kindCounts(elems []elements.Element) map[string]int {
	counts := make(map[string]int)
	for _, e := range elems {
		kind := config.Kind(e)
		if kind == "" {
			kind = fmt.Sprintf("%T", e)
		}
		counts[kind]++
	}
	return counts
}
