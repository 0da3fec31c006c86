package elements

import (
	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

// Wall is a straight wall drawn as a filled rectangle. The anchor point is
// the bottom left corner before rotation.
type Wall struct {
	AnchorPoint      geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	Length           float64        `yaml:"length" toml:"length"`
	Thickness        float64        `yaml:"thickness" toml:"thickness"`
	OrientationAngle float64        `yaml:"orientation_angle" toml:"orientation_angle"`
	Color            string         `yaml:"color" toml:"color"`
}

var _ Element = (*Wall)(nil)

func (w *Wall) Validate() error {
	if err := requirePositive(w.Length, "wall length"); err != nil {
		return err
	}
	if err := requirePositive(w.Thickness, "wall thickness"); err != nil {
		return err
	}
	if w.Color == "" {
		w.Color = DefaultColor
	}
	return checkColor(w.Color)
}

func (w *Wall) Draw(s drawing.Surface) {
	s.Rectangle(w.AnchorPoint, w.Length, w.Thickness, w.OrientationAngle, drawing.Style{Fill: w.Color})
}

// Window is a window opening drawn as two thin parallel rectangles. The
// anchor point is the bottom left corner of the outer line before rotation.
type Window struct {
	AnchorPoint geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	Length      float64        `yaml:"length" toml:"length"`
	// OverallThickness is the distance between the outer faces of the two
	// lines, usually the thickness of the wall holding the window.
	OverallThickness float64 `yaml:"overall_thickness" toml:"overall_thickness"`
	// SingleLineThickness is the thickness of each of the two lines.
	SingleLineThickness float64 `yaml:"single_line_thickness" toml:"single_line_thickness"`
	OrientationAngle    float64 `yaml:"orientation_angle" toml:"orientation_angle"`
	Color               string  `yaml:"color" toml:"color"`
}

var _ Element = (*Window)(nil)

func (w *Window) Validate() error {
	if err := requirePositive(w.Length, "window length"); err != nil {
		return err
	}
	if err := requirePositive(w.OverallThickness, "window overall thickness"); err != nil {
		return err
	}
	if err := requirePositive(w.SingleLineThickness, "window single line thickness"); err != nil {
		return err
	}
	if w.OverallThickness-2*w.SingleLineThickness <= 0 {
		return errors.New(
			errors.ErrCodeInvalidGeometry,
			"window can not be drawn due to invalid thicknesses",
		)
	}
	if w.Color == "" {
		w.Color = DefaultColor
	}
	return checkColor(w.Color)
}

func (w *Window) Draw(s drawing.Surface) {
	st := drawing.Style{Fill: w.Color}
	s.Rectangle(w.AnchorPoint, w.Length, w.SingleLineThickness, w.OrientationAngle, st)

	shift := w.OverallThickness - w.SingleLineThickness
	second := geometry.PointAtAngle(w.AnchorPoint, shift, w.OrientationAngle+geometry.RightAngle)
	s.Rectangle(second, w.Length, w.SingleLineThickness, w.OrientationAngle, st)
}

// Door is a single door with its frame and opening trajectory. The anchor
// point is the door frame corner on the hinges side of the doorway, on the
// side the door opens towards (the opposite side when ToTheRight is set).
type Door struct {
	AnchorPoint geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	// DoorwayWidth is the width of the whole doorway, the door leaf plus
	// both sides of the frame.
	DoorwayWidth float64 `yaml:"doorway_width" toml:"doorway_width"`
	// DoorWidth is the width of the door leaf alone.
	DoorWidth        float64 `yaml:"door_width" toml:"door_width"`
	Thickness        float64 `yaml:"thickness" toml:"thickness"`
	OrientationAngle float64 `yaml:"orientation_angle" toml:"orientation_angle"`
	// ToTheRight tells that the door opens to the right when looked at from
	// the hinges along the doorway.
	ToTheRight bool   `yaml:"to_the_right" toml:"to_the_right"`
	Color      string `yaml:"color" toml:"color"`
}

var _ Element = (*Door)(nil)

func (d *Door) Validate() error {
	if err := requirePositive(d.DoorwayWidth, "doorway width"); err != nil {
		return err
	}
	if err := requirePositive(d.DoorWidth, "door width"); err != nil {
		return err
	}
	if err := requirePositive(d.Thickness, "door thickness"); err != nil {
		return err
	}
	if d.DoorWidth > d.DoorwayWidth {
		return errors.New(
			errors.ErrCodeInvalidGeometry,
			"door width must not exceed doorway width",
		)
	}
	if d.Thickness >= d.DoorWidth {
		return errors.New(
			errors.ErrCodeInvalidGeometry,
			"door thickness must be less than door width",
		)
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	return checkColor(d.Color)
}

// frameWidth is the width of one side of the door frame.
func (d *Door) frameWidth() float64 {
	return (d.DoorwayWidth - d.DoorWidth) / 2
}

func (d *Door) Draw(s drawing.Surface) {
	st := drawing.Style{Fill: d.Color}
	frameAngle := d.OrientationAngle - geometry.RightAngle
	fw := d.frameWidth()

	s.Rectangle(d.AnchorPoint, d.Thickness, fw, frameAngle, st)
	farCorner := geometry.PointAtAngle(d.AnchorPoint, fw+d.DoorWidth, d.OrientationAngle)
	s.Rectangle(farCorner, d.Thickness, fw, frameAngle, st)

	hinges := geometry.PointAtAngle(d.AnchorPoint, fw, d.OrientationAngle)
	if d.ToTheRight {
		hinges = geometry.PointAtAngle(hinges, d.Thickness, frameAngle)
		s.Rectangle(hinges, d.DoorWidth, d.Thickness, frameAngle, st)
	} else {
		s.Rectangle(hinges, d.Thickness, d.DoorWidth, d.OrientationAngle, st)
	}

	// The trajectory arc starts a couple of degrees early so that it visually
	// touches the open door leaf instead of stopping at its inner face.
	const overshoot = 2.0
	arcCenter := geometry.PointAtAngle(hinges, d.Thickness, d.OrientationAngle)
	arcStyle := drawing.Style{Stroke: d.Color, Width: 1}
	if d.ToTheRight {
		s.EllipticalArc(
			arcCenter, d.DoorWidth-d.Thickness, d.DoorWidth,
			d.OrientationAngle, -geometry.RightAngle-overshoot, 0, arcStyle,
		)
	} else {
		s.EllipticalArc(
			arcCenter, d.DoorWidth-d.Thickness, d.DoorWidth,
			d.OrientationAngle, 0, geometry.RightAngle+overshoot, arcStyle,
		)
	}
}
