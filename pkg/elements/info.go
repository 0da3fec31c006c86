package elements

import (
	"math"
	"strconv"

	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

// DimensionArrow is a double-headed arrow annotated with its own length.
// It does not represent a real object, it documents a distance on the plan.
// The anchor point is the leftmost point before rotation.
type DimensionArrow struct {
	AnchorPoint geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	// Length is both the distance spanned by the arrow and the text of its
	// annotation, in meters.
	Length           float64 `yaml:"length" toml:"length"`
	OrientationAngle float64 `yaml:"orientation_angle" toml:"orientation_angle"`
	// Width is the width of the arrow shaft, in meters.
	Width float64 `yaml:"width" toml:"width"`
	// TipLength is the length of a single arrow tip, in meters.
	TipLength float64 `yaml:"tip_length" toml:"tip_length"`
	FontSize  float64 `yaml:"font_size" toml:"font_size"`
	// AnnotateAbove places the annotation above the shaft instead of below
	// it (before rotation).
	AnnotateAbove bool   `yaml:"annotate_above" toml:"annotate_above"`
	Color         string `yaml:"color" toml:"color"`
}

var _ Element = (*DimensionArrow)(nil)

func (d *DimensionArrow) Validate() error {
	if err := requirePositive(d.Length, "dimension arrow length"); err != nil {
		return err
	}
	if d.Width == 0 {
		d.Width = 0.01
	}
	if err := requirePositive(d.Width, "dimension arrow width"); err != nil {
		return err
	}
	if d.TipLength == 0 {
		d.TipLength = 0.1
	}
	if err := requirePositive(d.TipLength, "dimension arrow tip length"); err != nil {
		return err
	}
	if 2*d.TipLength >= d.Length {
		return errors.New(
			errors.ErrCodeInvalidGeometry,
			"dimension arrow tips must not overlap",
		)
	}
	if d.FontSize == 0 {
		d.FontSize = 10
	}
	if err := requirePositive(d.FontSize, "dimension arrow font size"); err != nil {
		return err
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	return checkColor(d.Color)
}

func (d *DimensionArrow) Draw(s drawing.Surface) {
	// Tips open at 60 degrees, so each tip edge makes 30 degrees with the
	// shaft axis. The shaft sides meet the inner tip edges without gaps.
	tipAngle := geometry.Radians(30)
	tan30 := math.Tan(tipAngle)
	innerX := d.TipLength - math.Sin(tipAngle)*d.Width
	tipY := tan30 * innerX
	shoulderY := tipY - math.Cos(tipAngle)*d.Width
	shaftX := d.Width/2/tan30 + d.Width/math.Sin(tipAngle)

	local := []geometry.Point{
		{X: 0, Y: 0},
		{X: innerX, Y: tipY},
		{X: d.TipLength, Y: shoulderY},
		{X: shaftX, Y: d.Width / 2},
		{X: d.Length - shaftX, Y: d.Width / 2},
		{X: d.Length - d.TipLength, Y: shoulderY},
		{X: d.Length - innerX, Y: tipY},
		{X: d.Length, Y: 0},
		{X: d.Length - innerX, Y: -tipY},
		{X: d.Length - d.TipLength, Y: -shoulderY},
		{X: d.Length - shaftX, Y: -d.Width / 2},
		{X: shaftX, Y: -d.Width / 2},
		{X: d.TipLength, Y: -shoulderY},
		{X: innerX, Y: -tipY},
	}
	vertices := make([]geometry.Point, len(local))
	for i, p := range local {
		vertices[i] = geometry.Rotate(p, geometry.Point{}, d.OrientationAngle).Add(d.AnchorPoint)
	}
	s.Polygon(vertices, drawing.Style{Fill: d.Color})

	offset := -0.0125 * d.FontSize
	if d.AnnotateAbove {
		offset = -offset
	}
	textCenter := geometry.Point{X: d.Length / 2, Y: offset}
	at := geometry.Rotate(textCenter, geometry.Point{}, d.OrientationAngle).Add(d.AnchorPoint)
	s.Text(at, formatLength(d.Length), drawing.TextStyle{
		Size:     d.FontSize,
		Color:    d.Color,
		Rotation: d.OrientationAngle,
	})
}

// formatLength renders a length for annotation without trailing zeros.
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TextBox is a free-standing annotation. The anchor point is the center of
// the text.
type TextBox struct {
	AnchorPoint      geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	Text             string         `yaml:"text" toml:"text"`
	OrientationAngle float64        `yaml:"orientation_angle" toml:"orientation_angle"`
	FontSize         float64        `yaml:"font_size" toml:"font_size"`
	Color            string         `yaml:"color" toml:"color"`
}

var _ Element = (*TextBox)(nil)

func (t *TextBox) Validate() error {
	if t.Text == "" {
		return errors.New(errors.ErrCodeInvalidElement, "text box requires text")
	}
	if t.FontSize == 0 {
		t.FontSize = 10
	}
	if err := requirePositive(t.FontSize, "text box font size"); err != nil {
		return err
	}
	if t.Color == "" {
		t.Color = DefaultColor
	}
	return checkColor(t.Color)
}

func (t *TextBox) Draw(s drawing.Surface) {
	s.Text(t.AnchorPoint, t.Text, drawing.TextStyle{
		Size:     t.FontSize,
		Color:    t.Color,
		Rotation: t.OrientationAngle,
	})
}
