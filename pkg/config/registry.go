package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

// Registry maps the "type" tokens of configuration files to element
// factories. Factories return zero-valued elements ready to be filled from
// a config entry and validated.
func Registry() map[string]func() elements.Element {
	return map[string]func() elements.Element{
		"ceiling_lamp":     func() elements.Element { return &elements.CeilingLamp{} },
		"dimension_arrow":  func() elements.Element { return &elements.DimensionArrow{} },
		"door":             func() elements.Element { return &elements.Door{} },
		"electrical_cable": func() elements.Element { return &elements.ElectricalCable{} },
		"led_strip":        func() elements.Element { return &elements.LEDStrip{} },
		"line":             func() elements.Element { return &elements.Line{} },
		"polygon":          func() elements.Element { return &elements.Polygon{} },
		"power_outlet":     func() elements.Element { return &elements.PowerOutlet{} },
		"switch":           func() elements.Element { return &elements.Switch{} },
		"text_box":         func() elements.Element { return &elements.TextBox{} },
		"wall":             func() elements.Element { return &elements.Wall{} },
		"wall_lamp":        func() elements.Element { return &elements.WallLamp{} },
		"window":           func() elements.Element { return &elements.Window{} },
	}
}

// NewElement returns a fresh element of the given type token.
func NewElement(kind string) (elements.Element, error) {
	factory, ok := Registry()[kind]
	if !ok {
		return nil, errors.New(
			errors.ErrCodeNotFound,
			"unknown element type %q (known types: %s)", kind, strings.Join(Kinds(), ", "),
		)
	}
	return factory(), nil
}

// Kinds returns all registered type tokens in alphabetical order.
func Kinds() []string {
	return slices.Sorted(maps.Keys(Registry()))
}
