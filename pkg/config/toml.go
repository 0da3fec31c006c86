package config

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
)

// tomlConfig mirrors Config with element entries kept as primitives, so
// each entry can be decoded twice: once for its "type" key and once into
// the concrete element.
type tomlConfig struct {
	DefaultLayout    *floorplan.Layout           `toml:"default_layout"`
	ReusableElements map[string][]toml.Primitive `toml:"reusable_elements"`
	FloorPlans       []tomlFloorPlan             `toml:"floor_plans"`
	Project          Output                      `toml:"project"`
}

type tomlFloorPlan struct {
	Title             *floorplan.Title  `toml:"title"`
	Layout            *floorplan.Layout `toml:"layout"`
	InheritedElements []string          `toml:"inherited_elements"`
	Elements          []toml.Primitive  `toml:"elements"`
}

func loadTOML(data []byte) (*Config, error) {
	var raw tomlConfig
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse TOML config")
	}

	cfg := &Config{
		DefaultLayout: raw.DefaultLayout,
		Project:       raw.Project,
	}
	if len(raw.ReusableElements) > 0 {
		cfg.ReusableElements = make(map[string][]elements.Element, len(raw.ReusableElements))
	}
	for name, prims := range raw.ReusableElements {
		set, err := elementsFromTOML(md, prims)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reusable element set %q", name)
		}
		cfg.ReusableElements[name] = set
	}
	for i, plan := range raw.FloorPlans {
		elems, err := elementsFromTOML(md, plan.Elements)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "floor plan %d", i)
		}
		cfg.FloorPlans = append(cfg.FloorPlans, FloorPlan{
			Title:             plan.Title,
			Layout:            plan.Layout,
			InheritedElements: plan.InheritedElements,
			Elements:          elems,
		})
	}

	// Undecoded keys are checked only after every primitive has been
	// expanded, since element fields count as decoded one entry at a time.
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

func elementsFromTOML(md toml.MetaData, prims []toml.Primitive) ([]elements.Element, error) {
	elems := make([]elements.Element, 0, len(prims))
	for i, prim := range prims {
		elem, err := elementFromTOML(md, prim)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "element %d", i)
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

func elementFromTOML(md toml.MetaData, prim toml.Primitive) (elements.Element, error) {
	var head struct {
		Type string `toml:"type"`
	}
	if err := md.PrimitiveDecode(prim, &head); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read element type")
	}
	if head.Type == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "element entry has no type key")
	}
	elem, err := NewElement(head.Type)
	if err != nil {
		return nil, err
	}
	if err := md.PrimitiveDecode(prim, elem); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s element", head.Type)
	}
	return elem, nil
}
