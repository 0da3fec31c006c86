// Package config loads project descriptions from YAML or TOML files and
// builds renderable floor plan projects from them.
//
// A project description has four top level sections:
//
//	default_layout    page layout used by plans without their own
//	reusable_elements named element sets shared between plans
//	floor_plans       the plans, in page order
//	project           output settings (dpi, pdf_file, png_dir)
//
// Each element entry carries a "type" key naming a registered element kind;
// the remaining keys fill that element's fields. Unknown keys anywhere in
// the file are errors, so typos surface at load time instead of silently
// producing wrong drawings.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
)

// Config is a parsed project description, independent of the file format it
// was loaded from. Elements are decoded but not yet validated; validation
// happens when plans are built.
type Config struct {
	DefaultLayout    *floorplan.Layout
	ReusableElements map[string][]elements.Element
	FloorPlans       []FloorPlan
	Project          Output
}

// FloorPlan describes a single plan of the project.
type FloorPlan struct {
	Title             *floorplan.Title
	Layout            *floorplan.Layout
	InheritedElements []string
	Elements          []elements.Element
}

// Output collects project-wide rendering settings. Zero DPI selects the
// default; empty file names switch the corresponding output off.
type Output struct {
	DPI     float64 `yaml:"dpi" toml:"dpi"`
	PDFFile string  `yaml:"pdf_file" toml:"pdf_file"`
	PNGDir  string  `yaml:"png_dir" toml:"png_dir"`
}

// Load reads a project description, choosing the format by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read config %s", path)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return loadYAML(data)
	case ".toml":
		return loadTOML(data)
	default:
		return nil, errors.New(
			errors.ErrCodeUnsupported,
			"unsupported config format %q (want .yaml, .yml, or .toml)", ext,
		)
	}
}
