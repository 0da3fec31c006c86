package geometry

import (
	"gopkg.in/yaml.v3"

	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

// Points appear in configuration files as two-element arrays like
// [1.5, 2.0], not as mappings, to keep coordinate-heavy configs readable.

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var coords []float64
	if err := value.Decode(&coords); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "point must be an [x, y] pair")
	}
	return p.fromCoords(coords)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (p *Point) UnmarshalTOML(value any) error {
	raw, ok := value.([]any)
	if !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "point must be an [x, y] pair, got %T", value)
	}
	coords := make([]float64, 0, len(raw))
	for _, entry := range raw {
		switch n := entry.(type) {
		case float64:
			coords = append(coords, n)
		case int64:
			coords = append(coords, float64(n))
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "point coordinate must be a number, got %T", entry)
		}
	}
	return p.fromCoords(coords)
}

func (p *Point) fromCoords(coords []float64) error {
	if len(coords) != 2 {
		return errors.New(
			errors.ErrCodeInvalidConfig,
			"point must have exactly two coordinates, got %d", len(coords),
		)
	}
	p.X, p.Y = coords[0], coords[1]
	return nil
}
