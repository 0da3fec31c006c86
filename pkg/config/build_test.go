package config

import (
	"strings"
	"testing"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

func TestBuildProject(t *testing.T) {
	cfg, err := loadYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("loadYAML() error: %v", err)
	}
	project, err := Build(cfg, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(project.Plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(project.Plans))
	}
	if project.DPI != 150 {
		t.Errorf("expected DPI 150, got %g", project.DPI)
	}
	first := project.Plans[0]
	if first.Title() != "Ground floor" {
		t.Errorf("unexpected title %q", first.Title())
	}
	// One inherited wall plus the plan's own door.
	if first.ElementCount() != 2 {
		t.Errorf("expected 2 elements on first plan, got %d", first.ElementCount())
	}
	if project.Plans[1].ElementCount() != 1 {
		t.Errorf("expected 1 element on second plan, got %d", project.Plans[1].ElementCount())
	}
}

func TestBuildErrors(t *testing.T) {
	layout := &floorplan.Layout{TopRightCorner: geometry.Point{X: 5, Y: 3}}
	tests := []struct {
		name     string
		cfg      *Config
		wantCode errors.Code
		wantMsg  string
	}{
		{
			name:     "NoFloorPlans",
			cfg:      &Config{},
			wantCode: errors.ErrCodeInvalidConfig,
			wantMsg:  "no floor plans",
		},
		{
			name:     "NoLayoutAnywhere",
			cfg:      &Config{FloorPlans: []FloorPlan{{}}},
			wantCode: errors.ErrCodeInvalidConfig,
			wantMsg:  "no layout",
		},
		{
			name: "UnknownInheritedSet",
			cfg: &Config{
				FloorPlans: []FloorPlan{{Layout: layout, InheritedElements: []string{"ghost"}}},
			},
			wantCode: errors.ErrCodeNotFound,
			wantMsg:  `"ghost"`,
		},
		{
			name: "InvalidElement",
			cfg: &Config{
				FloorPlans: []FloorPlan{{
					Layout:   layout,
					Elements: []elements.Element{&elements.Wall{Thickness: 0.1}},
				}},
			},
			wantCode: errors.ErrCodeInvalidConfig,
			wantMsg:  "must be positive",
		},
		{
			name: "BadTitle",
			cfg: &Config{
				FloorPlans: []FloorPlan{{Layout: layout, Title: &floorplan.Title{Text: "Attic"}}},
			},
			wantCode: errors.ErrCodeInvalidConfig,
			wantMsg:  "font size",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.cfg, nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("expected code %s, got %v", tt.wantCode, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message to mention %q, got %q", tt.wantMsg, err)
			}
		})
	}
}

func TestBuildSharesReusableElements(t *testing.T) {
	layout := &floorplan.Layout{TopRightCorner: geometry.Point{X: 5, Y: 3}}
	cfg := &Config{
		ReusableElements: map[string][]elements.Element{
			"walls": {&elements.Wall{Length: 5, Thickness: 0.2}},
		},
		FloorPlans: []FloorPlan{
			{Layout: layout, InheritedElements: []string{"walls"}},
			{Layout: layout, InheritedElements: []string{"walls"}},
		},
	}
	project, err := Build(cfg, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for i, plan := range project.Plans {
		if plan.ElementCount() != 1 {
			t.Errorf("plan %d: expected 1 element, got %d", i, plan.ElementCount())
		}
	}
}

func TestLoadProject(t *testing.T) {
	project, err := LoadProject(writeConfig(t, "plan.toml", sampleTOML), nil)
	if err != nil {
		t.Fatalf("LoadProject() error: %v", err)
	}
	if len(project.Plans) != 2 {
		t.Errorf("expected 2 plans, got %d", len(project.Plans))
	}
}
