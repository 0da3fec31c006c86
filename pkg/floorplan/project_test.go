package floorplan

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

func testPlan(t *testing.T, title string) *Plan {
	t.Helper()
	plan, err := New(testLayout(), nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	wall := &elements.Wall{AnchorPoint: geometry.Point{}, Length: 5, Thickness: 0.2}
	if err := plan.Add(wall); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if title != "" {
		if err := plan.AddTitle(Title{Text: title, FontSize: 12}); err != nil {
			t.Fatalf("AddTitle() error: %v", err)
		}
	}
	return plan
}

func TestNewProjectDefaults(t *testing.T) {
	project, err := NewProject([]*Plan{testPlan(t, "")}, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	if project.DPI != DefaultDPI {
		t.Errorf("expected default DPI %g, got %g", DefaultDPI, project.DPI)
	}
	if project.Logger == nil {
		t.Error("expected a non-nil logger")
	}

	if _, err := NewProject(nil, -100, nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for negative dpi, got %v", err)
	}
}

func TestRenderPDF(t *testing.T) {
	project, err := NewProject([]*Plan{testPlan(t, "Ground floor"), testPlan(t, "")}, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "plans.pdf")
	if err := project.RenderPDF(context.Background(), path); err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(8, len(data))])
	}
}

func TestWritePDFToBuffer(t *testing.T) {
	project, err := NewProject([]*Plan{testPlan(t, "")}, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	var buf bytes.Buffer
	if err := project.WritePDF(context.Background(), &buf); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("buffer does not look like a PDF")
	}
}

func TestRenderPlanWithWallAndDoor(t *testing.T) {
	plan, err := New(testLayout(), nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	err = plan.Add(
		&elements.Wall{Length: 5, Thickness: 0.2},
		&elements.Door{
			AnchorPoint:      geometry.Point{X: 2},
			DoorwayWidth:     1,
			DoorWidth:        0.9,
			Thickness:        0.2,
			OrientationAngle: 90,
		},
	)
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if w, h := plan.Size(); w != 50 || h != 30 {
		t.Errorf("page size = %v x %v mm, want 50 x 30", w, h)
	}

	project, err := NewProject([]*Plan{plan}, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	var buf bytes.Buffer
	if err := project.WritePDF(context.Background(), &buf); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("buffer does not look like a PDF")
	}
}

func TestRenderPDFEmptyProject(t *testing.T) {
	project, err := NewProject(nil, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "plans.pdf")
	if err := project.RenderPDF(context.Background(), path); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("expected INVALID_LAYOUT, got %v", err)
	}
}

func TestRenderCanceled(t *testing.T) {
	project, err := NewProject([]*Plan{testPlan(t, "")}, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = project.RenderPDF(ctx, filepath.Join(t.TempDir(), "plans.pdf"))
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("expected RENDER_ERROR after cancellation, got %v", err)
	}
}

func TestRenderPNGs(t *testing.T) {
	plans := []*Plan{testPlan(t, ""), testPlan(t, "Ground floor"), testPlan(t, "attic.png")}
	project, err := NewProject(plans, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "out")
	if err := project.RenderPNGs(context.Background(), dir); err != nil {
		t.Fatalf("RenderPNGs() error: %v", err)
	}
	for _, name := range []string{"0.png", "Ground floor.png", "attic.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("expected %s to be non-empty", name)
		}
	}
}

func TestPNGFileName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		index int
		want  string
	}{
		{name: "Titled", title: "Ground floor", index: 0, want: "Ground floor.png"},
		{name: "Untitled", title: "", index: 2, want: "2.png"},
		{name: "AlreadySuffixed", title: "attic.png", index: 0, want: "attic.png"},
		{name: "DottedTitle", title: "v1.2", index: 0, want: "v1.2.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pngFileName(tt.title, tt.index); got != tt.want {
				t.Errorf("pngFileName(%q, %d) = %q, want %q", tt.title, tt.index, got, tt.want)
			}
		})
	}
}

func TestRenderPNGsRejectsPathSeparatorTitle(t *testing.T) {
	project, err := NewProject([]*Plan{testPlan(t, "a/b")}, 0, nil)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}
	err = project.RenderPNGs(context.Background(), t.TempDir())
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("expected INVALID_PATH, got %v", err)
	}
}
