package outline

import (
	"strings"
	"testing"

	"github.com/Nikolay-Lysenko/renovation/pkg/config"
	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultLayout: &floorplan.Layout{TopRightCorner: geometry.Point{X: 5, Y: 3}},
		ReusableElements: map[string][]elements.Element{
			"outer_walls": {&elements.Wall{Length: 5, Thickness: 0.2}},
		},
		FloorPlans: []config.FloorPlan{
			{
				Title:             &floorplan.Title{Text: "Ground floor", FontSize: 14},
				InheritedElements: []string{"outer_walls"},
				Elements: []elements.Element{
					&elements.Door{DoorwayWidth: 0.9, DoorWidth: 0.7, Thickness: 0.05},
					&elements.Wall{Length: 3, Thickness: 0.2},
				},
			},
			{
				Elements: []elements.Element{
					&elements.CeilingLamp{SymbolDiameter: 0.3},
					&elements.CeilingLamp{SymbolDiameter: 0.3},
				},
			},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testConfig(), "plans.yaml", Options{})

	if !strings.HasPrefix(dot, "digraph G {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("DOT output is not a digraph:\n%s", dot)
	}
	wantFragments := []string{
		`"project" [label="plans.yaml\n2 floor plans"`,
		`"plan0" [label="Ground floor"]`,
		`"plan1" [label="floor plan 1"]`,
		`"set:outer_walls" [label="outer_walls\nelements: 1", style="rounded,filled,dashed"`,
		`"plan0:door" [label="door: 1"`,
		`"plan0:wall" [label="wall: 1"`,
		`"plan1:ceiling_lamp" [label="ceiling_lamp: 2"`,
		`"project" -> "plan0";`,
		`"project" -> "plan1";`,
		`"plan0" -> "set:outer_walls";`,
		`"plan0" -> "plan0:door";`,
		`"plan1" -> "plan1:ceiling_lamp";`,
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(dot, fragment) {
			t.Errorf("DOT output is missing %q:\n%s", fragment, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testConfig(), "", Options{Detailed: true})

	if !strings.Contains(dot, `"project" [label="project\n2 floor plans"`) {
		t.Error("expected the empty name to fall back to \"project\"")
	}
	// Both plans use the default layout, filled with the 1:100 scale.
	if !strings.Contains(dot, `"plan0" [label="Ground floor\n5 x 3 m, scale 1:100"]`) {
		t.Errorf("detailed plan label missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="200pt" height="80pt" viewBox="0.00 0.00 200.25 80.25" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 200.25 80.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="200" height="80"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}

	// Without a viewBox the input passes through untouched.
	plain := []byte(`<svg><g></g></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("expected passthrough, got %s", got)
	}
}
