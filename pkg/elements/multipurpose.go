package elements

import (
	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

// lineStyles maps configuration style names to dash patterns.
var lineStyles = map[string][]float64{
	"solid":    drawing.Solid,
	"dashed":   drawing.Dashed,
	"dotted":   drawing.Dotted,
	"dash_dot": drawing.DashDot,
}

// Line is a straight line with a context-dependent meaning, for example a
// furniture edge or a zone boundary.
type Line struct {
	FirstPoint  geometry.Point `yaml:"first_point" toml:"first_point"`
	SecondPoint geometry.Point `yaml:"second_point" toml:"second_point"`
	// Width is the stroke width in points.
	Width float64 `yaml:"width" toml:"width"`
	// Style is one of "solid", "dashed", "dotted", or "dash_dot".
	Style string `yaml:"style" toml:"style"`
	Color string `yaml:"color" toml:"color"`
}

var _ Element = (*Line)(nil)

func (l *Line) Validate() error {
	if l.Width == 0 {
		l.Width = DefaultLineWidth
	}
	if err := requirePositive(l.Width, "line width"); err != nil {
		return err
	}
	if l.Style == "" {
		l.Style = "solid"
	}
	if _, ok := lineStyles[l.Style]; !ok {
		return errors.New(errors.ErrCodeInvalidStyle, "unknown line style: %s", l.Style)
	}
	if l.Color == "" {
		l.Color = DefaultColor
	}
	return checkColor(l.Color)
}

func (l *Line) Draw(s drawing.Surface) {
	s.Segment(l.FirstPoint, l.SecondPoint, drawing.Style{
		Stroke: l.Color,
		Width:  l.Width,
		Dashes: lineStyles[l.Style],
	})
}

// Polygon is a filled polygon with a context-dependent meaning, for example
// a furniture footprint or a highlighted zone.
type Polygon struct {
	Vertices []geometry.Point `yaml:"vertices" toml:"vertices"`
	Color    string           `yaml:"color" toml:"color"`
}

var _ Element = (*Polygon)(nil)

func (p *Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return errors.New(
			errors.ErrCodeInvalidGeometry,
			"polygon requires at least three vertices",
		)
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}
	return checkColor(p.Color)
}

func (p *Polygon) Draw(s drawing.Surface) {
	s.Polygon(p.Vertices, drawing.Style{Fill: p.Color})
}
