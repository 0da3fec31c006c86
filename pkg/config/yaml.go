package config

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
)

// yamlConfig mirrors Config with element entries kept as raw nodes, since
// the concrete element type is only known after reading each entry's
// "type" key.
type yamlConfig struct {
	DefaultLayout    *floorplan.Layout      `yaml:"default_layout"`
	ReusableElements map[string][]yaml.Node `yaml:"reusable_elements"`
	FloorPlans       []yamlFloorPlan        `yaml:"floor_plans"`
	Project          Output                 `yaml:"project"`
}

type yamlFloorPlan struct {
	Title             *floorplan.Title  `yaml:"title"`
	Layout            *floorplan.Layout `yaml:"layout"`
	InheritedElements []string          `yaml:"inherited_elements"`
	Elements          []yaml.Node       `yaml:"elements"`
}

func loadYAML(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var raw yamlConfig
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config file is empty")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse YAML config")
	}

	cfg := &Config{
		DefaultLayout: raw.DefaultLayout,
		Project:       raw.Project,
	}
	if len(raw.ReusableElements) > 0 {
		cfg.ReusableElements = make(map[string][]elements.Element, len(raw.ReusableElements))
	}
	for name, nodes := range raw.ReusableElements {
		set, err := elementsFromYAML(nodes)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reusable element set %q", name)
		}
		cfg.ReusableElements[name] = set
	}
	for i, plan := range raw.FloorPlans {
		elems, err := elementsFromYAML(plan.Elements)
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
	return cfg, nil
}

func elementsFromYAML(nodes []yaml.Node) ([]elements.Element, error) {
	elems := make([]elements.Element, 0, len(nodes))
	for i, node := range nodes {
		elem, err := elementFromYAML(node)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "element %d", i)
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

// elementFromYAML instantiates the element named by the entry's "type" key
// and fills it from the remaining keys. The type key is removed before
// decoding so that it does not count as an unknown field.
func elementFromYAML(node yaml.Node) (elements.Element, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "element entry must be a mapping")
	}
	kind := ""
	kept := make([]*yaml.Node, 0, len(node.Content))
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "type" {
			kind = node.Content[i+1].Value
			continue
		}
		kept = append(kept, node.Content[i], node.Content[i+1])
	}
	if kind == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "element entry has no type key")
	}
	elem, err := NewElement(kind)
	if err != nil {
		return nil, err
	}
	node.Content = kept

	// yaml.Node.Decode has no strict mode, so the pruned node is fed
	// through a fresh decoder with KnownFields enabled instead.
	buf, err := yaml.Marshal(&node)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to re-encode %s element", kind)
	}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(elem); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s element", kind)
	}
	return elem, nil
}
