package elements

import (
	"math"

	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

// CeilingLamp is a ceiling lamp symbol: a circle with a cross inside. The
// anchor point is the center of the symbol.
type CeilingLamp struct {
	AnchorPoint    geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	SymbolDiameter float64        `yaml:"symbol_diameter" toml:"symbol_diameter"`
	LineWidth      float64        `yaml:"line_width" toml:"line_width"`
	Color          string         `yaml:"color" toml:"color"`
}

var _ Element = (*CeilingLamp)(nil)

func (l *CeilingLamp) Validate() error {
	if err := requirePositive(l.SymbolDiameter, "ceiling lamp symbol diameter"); err != nil {
		return err
	}
	if l.LineWidth == 0 {
		l.LineWidth = DefaultLineWidth
	}
	if err := requirePositive(l.LineWidth, "ceiling lamp line width"); err != nil {
		return err
	}
	if l.Color == "" {
		l.Color = DefaultColor
	}
	return checkColor(l.Color)
}

func (l *CeilingLamp) Draw(s drawing.Surface) {
	st := drawing.Style{Stroke: l.Color, Width: l.LineWidth}
	radius := 0.5 * l.SymbolDiameter
	s.Circle(l.AnchorPoint, radius, st)

	// Diagonals of the inscribed square form the cross.
	reach := 0.5 * math.Sqrt2 * radius
	s.Segment(
		geometry.Point{X: l.AnchorPoint.X - reach, Y: l.AnchorPoint.Y - reach},
		geometry.Point{X: l.AnchorPoint.X + reach, Y: l.AnchorPoint.Y + reach},
		st,
	)
	s.Segment(
		geometry.Point{X: l.AnchorPoint.X - reach, Y: l.AnchorPoint.Y + reach},
		geometry.Point{X: l.AnchorPoint.X + reach, Y: l.AnchorPoint.Y - reach},
		st,
	)
}

// WallLamp is a wall lamp (sconce) symbol: a rectangular stub on the wall
// topped with a circle-like arc crossed inside. The anchor point is the
// center of the wall connection segment.
type WallLamp struct {
	AnchorPoint      geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	SymbolDiameter   float64        `yaml:"symbol_diameter" toml:"symbol_diameter"`
	OrientationAngle float64        `yaml:"orientation_angle" toml:"orientation_angle"`
	// StubRelativeDepth is the ratio of the stub depth to its width.
	StubRelativeDepth float64 `yaml:"stub_relative_depth" toml:"stub_relative_depth"`
	LineWidth         float64 `yaml:"line_width" toml:"line_width"`
	Color             string  `yaml:"color" toml:"color"`
}

var _ Element = (*WallLamp)(nil)

func (l *WallLamp) Validate() error {
	if err := requirePositive(l.SymbolDiameter, "wall lamp symbol diameter"); err != nil {
		return err
	}
	if l.StubRelativeDepth == 0 {
		l.StubRelativeDepth = 0.3
	}
	if err := requirePositive(l.StubRelativeDepth, "wall lamp stub relative depth"); err != nil {
		return err
	}
	if l.LineWidth == 0 {
		l.LineWidth = DefaultLineWidth
	}
	if err := requirePositive(l.LineWidth, "wall lamp line width"); err != nil {
		return err
	}
	if l.Color == "" {
		l.Color = DefaultColor
	}
	return checkColor(l.Color)
}

func (l *WallLamp) Draw(s drawing.Surface) {
	st := drawing.Style{Stroke: l.Color, Width: l.LineWidth}
	stubWidth := 0.5 * math.Sqrt2 * l.SymbolDiameter
	stubDepth := l.StubRelativeDepth * stubWidth

	stubAnchor := geometry.PointAtAngle(l.AnchorPoint, 0.5*stubWidth, l.OrientationAngle+2*geometry.RightAngle)
	s.Rectangle(stubAnchor, stubWidth, stubDepth, l.OrientationAngle, st)

	shift := stubDepth + 0.5*stubWidth
	arcCenter := geometry.PointAtAngle(l.AnchorPoint, shift, l.OrientationAngle+geometry.RightAngle)
	// The arc is left open towards the stub.
	s.EllipticalArc(
		arcCenter, 0.5*l.SymbolDiameter, 0.5*l.SymbolDiameter,
		0, l.OrientationAngle-0.5*geometry.RightAngle, l.OrientationAngle+2.5*geometry.RightAngle, st,
	)

	radius := 0.5 * l.SymbolDiameter
	s.Segment(
		geometry.PointAtAngle(arcCenter, radius, l.OrientationAngle-1.5*geometry.RightAngle),
		geometry.PointAtAngle(arcCenter, radius, l.OrientationAngle+0.5*geometry.RightAngle),
		st,
	)
	s.Segment(
		geometry.PointAtAngle(arcCenter, radius, l.OrientationAngle+1.5*geometry.RightAngle),
		geometry.PointAtAngle(arcCenter, radius, l.OrientationAngle-0.5*geometry.RightAngle),
		st,
	)
}

// LEDStrip is an LED strip symbol: a thin frame with a row of circles
// inside. The anchor point is the bottom left corner before rotation.
type LEDStrip struct {
	AnchorPoint      geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	Length           float64        `yaml:"length" toml:"length"`
	Width            float64        `yaml:"width" toml:"width"`
	OrientationAngle float64        `yaml:"orientation_angle" toml:"orientation_angle"`
	LineWidth        float64        `yaml:"line_width" toml:"line_width"`
	Color            string         `yaml:"color" toml:"color"`
}

var _ Element = (*LEDStrip)(nil)

// circleDiameterToWidth sets the diameter of the inner circles relative to
// the strip width.
const circleDiameterToWidth = 0.6

func (l *LEDStrip) Validate() error {
	if err := requirePositive(l.Length, "led strip length"); err != nil {
		return err
	}
	if err := requirePositive(l.Width, "led strip width"); err != nil {
		return err
	}
	if l.LineWidth == 0 {
		l.LineWidth = DefaultLineWidth
	}
	if err := requirePositive(l.LineWidth, "led strip line width"); err != nil {
		return err
	}
	if l.Color == "" {
		l.Color = DefaultColor
	}
	return checkColor(l.Color)
}

func (l *LEDStrip) Draw(s drawing.Surface) {
	st := drawing.Style{Stroke: l.Color, Width: l.LineWidth}
	s.Rectangle(l.AnchorPoint, l.Length, l.Width, l.OrientationAngle, st)

	// Strips shorter than they are wide get no circles at all.
	nCircles := int(math.Floor(l.Length / l.Width))
	if nCircles < 1 {
		return
	}
	xOffset := 0.5 * l.Length / float64(nCircles)
	yOffset := 0.5 * l.Width
	for i := 0; i < nCircles; i++ {
		center := geometry.PointAtAngle(l.AnchorPoint, float64(2*i+1)*xOffset, l.OrientationAngle)
		center = geometry.PointAtAngle(center, yOffset, l.OrientationAngle+geometry.RightAngle)
		s.Circle(center, 0.5*circleDiameterToWidth*l.Width, st)
	}
}

// Switch is a lighting switch symbol: a filled dot on the wall with one or
// two key strokes growing into the room. The anchor point is the point
// shared with the wall.
type Switch struct {
	AnchorPoint      geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	SymbolLength     float64        `yaml:"symbol_length" toml:"symbol_length"`
	OrientationAngle float64        `yaml:"orientation_angle" toml:"orientation_angle"`
	// TwoKey tells that the switch has two keys.
	TwoKey bool `yaml:"two_key" toml:"two_key"`
	// PassThrough tells that other switches control the same lamps.
	PassThrough bool    `yaml:"pass_through" toml:"pass_through"`
	LineWidth   float64 `yaml:"line_width" toml:"line_width"`
	Color       string  `yaml:"color" toml:"color"`
}

var _ Element = (*Switch)(nil)

func (sw *Switch) Validate() error {
	if err := requirePositive(sw.SymbolLength, "switch symbol length"); err != nil {
		return err
	}
	if sw.LineWidth == 0 {
		sw.LineWidth = DefaultLineWidth
	}
	if err := requirePositive(sw.LineWidth, "switch line width"); err != nil {
		return err
	}
	if sw.Color == "" {
		sw.Color = DefaultColor
	}
	return checkColor(sw.Color)
}

func (sw *Switch) drawKey(s drawing.Surface, center geometry.Point, radius, keyAngle float64) {
	st := drawing.Style{Stroke: sw.Color, Width: sw.LineWidth}
	orthogonalAngle := keyAngle - geometry.RightAngle

	corner := geometry.PointAtAngle(center, 3*radius, keyAngle)
	s.Segment(center, corner, st)
	tip := geometry.PointAtAngle(corner, 4.0/3.0*radius, orthogonalAngle)
	s.Segment(corner, tip, st)

	if sw.PassThrough {
		middle := geometry.PointAtAngle(center, 2*radius, keyAngle)
		secondTip := geometry.PointAtAngle(middle, 2.0/3.0*radius, orthogonalAngle)
		s.Segment(middle, secondTip, st)
	}
}

func (sw *Switch) Draw(s drawing.Surface) {
	radius := sw.SymbolLength / 4
	center := geometry.PointAtAngle(sw.AnchorPoint, radius, sw.OrientationAngle+geometry.RightAngle)
	s.Circle(center, radius, drawing.Style{Fill: sw.Color, Stroke: sw.Color, Width: 0.1})

	sw.drawKey(s, center, radius, sw.OrientationAngle+geometry.RightAngle)
	if sw.TwoKey {
		sw.drawKey(s, center, radius, sw.OrientationAngle+0.5*geometry.RightAngle)
	}
}
