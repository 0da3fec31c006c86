package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateOutlineFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"dot", "dot", false},
		{"svg", "svg", false},
		{"png", "png", false},
		{"pdf unsupported", "pdf", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOutlineFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateOutlineFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain yaml", "plan.yaml", "plan"},
		{"nested path", "configs/loft.toml", "loft"},
		{"no extension", "plan", "plan"},
		{"dotted name", "v2.plan.yaml", "v2.plan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := projectName(tt.path); got != tt.want {
				t.Errorf("projectName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutlineCommandDOT(t *testing.T) {
	cfgPath := writeTestConfig(t)
	outPath := filepath.Join(t.TempDir(), "outline.dot")

	if err := execute(t, "outline", "-c", cfgPath, "-f", "dot", "-o", outPath); err != nil {
		t.Fatalf("outline failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("outline was not written: %v", err)
	}
	dot := string(data)
	if !strings.HasPrefix(dot, "digraph") {
		t.Errorf("output does not look like DOT: %q", dot[:min(40, len(dot))])
	}
	for _, want := range []string{"Studio", "wall: 1", "ceiling_lamp: 1"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT is missing %q", want)
		}
	}
}

func TestOutlineCommandRejectsBadFormat(t *testing.T) {
	err := execute(t, "outline", "-c", writeTestConfig(t), "-f", "gif")
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
	if !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("unexpected error: %v", err)
	}
}
