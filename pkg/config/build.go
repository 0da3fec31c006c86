package config

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
)

// Build assembles a renderable project from a parsed configuration. Plans
// without their own layout use the default layout; inherited element sets
// are placed before a plan's own elements, so the latter draw on top.
func Build(cfg *Config, logger *log.Logger) (*floorplan.Project, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if len(cfg.FloorPlans) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config defines no floor plans")
	}

	plans := make([]*floorplan.Plan, 0, len(cfg.FloorPlans))
	for i, fp := range cfg.FloorPlans {
		layout := fp.Layout
		if layout == nil {
			layout = cfg.DefaultLayout
		}
		if layout == nil {
			return nil, errors.New(
				errors.ErrCodeInvalidConfig,
				"floor plan %d has no layout and no default_layout is set", i,
			)
		}
		plan, err := floorplan.New(*layout, logger)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "floor plan %d", i)
		}
		if fp.Title != nil {
			if err := plan.AddTitle(*fp.Title); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "floor plan %d", i)
			}
		}
		for _, name := range fp.InheritedElements {
			set, ok := cfg.ReusableElements[name]
			if !ok {
				return nil, errors.New(
					errors.ErrCodeNotFound,
					"floor plan %d inherits unknown reusable element set %q", i, name,
				)
			}
			if err := plan.Add(set...); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "floor plan %d: set %q", i, name)
			}
		}
		if err := plan.Add(fp.Elements...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "floor plan %d", i)
		}
		plans = append(plans, plan)
	}
	return floorplan.NewProject(plans, cfg.Project.DPI, logger)
}

// LoadProject is the one-call path from a config file to a renderable
// project.
func LoadProject(path string, logger *log.Logger) (*floorplan.Project, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(cfg, logger)
}
