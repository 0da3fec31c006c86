package elements

import (
	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

// PowerOutlet is a power outlet symbol: a semicircle sitting on the wall
// with a stem growing from its apex into the room. The anchor point is the
// center of the segment shared with the wall.
type PowerOutlet struct {
	AnchorPoint      geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	Length           float64        `yaml:"length" toml:"length"`
	OrientationAngle float64        `yaml:"orientation_angle" toml:"orientation_angle"`
	// Waterproof marks outlets installed in wet zones.
	Waterproof bool `yaml:"waterproof" toml:"waterproof"`
	// HighVoltage marks 380-400V outlets as opposed to regular 220-230V ones.
	HighVoltage bool `yaml:"high_voltage" toml:"high_voltage"`
	// LowCurrent marks outlets for low-current appliances such as routers,
	// TV sockets, or Ethernet outlets.
	LowCurrent bool    `yaml:"low_current" toml:"low_current"`
	LineWidth  float64 `yaml:"line_width" toml:"line_width"`
	Color      string  `yaml:"color" toml:"color"`
}

var _ Element = (*PowerOutlet)(nil)

func (p *PowerOutlet) Validate() error {
	if err := requirePositive(p.Length, "power outlet length"); err != nil {
		return err
	}
	if p.LineWidth == 0 {
		p.LineWidth = DefaultLineWidth
	}
	if err := requirePositive(p.LineWidth, "power outlet line width"); err != nil {
		return err
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}
	return checkColor(p.Color)
}

func (p *PowerOutlet) Draw(s drawing.Surface) {
	st := drawing.Style{Stroke: p.Color, Width: p.LineWidth}
	halfLength := 0.5 * p.Length
	tipAngle := p.OrientationAngle + geometry.RightAngle

	s.EllipticalArc(
		p.AnchorPoint, halfLength, halfLength,
		0, p.OrientationAngle, p.OrientationAngle+2*geometry.RightAngle, st,
	)

	arcMiddle := geometry.PointAtAngle(p.AnchorPoint, halfLength, tipAngle)
	s.Segment(p.AnchorPoint, arcMiddle, st)

	barLeftEnd := geometry.PointAtAngle(arcMiddle, halfLength, p.OrientationAngle+2*geometry.RightAngle)
	barRightEnd := geometry.PointAtAngle(arcMiddle, halfLength, p.OrientationAngle)
	s.Segment(barLeftEnd, barRightEnd, st)

	tipEnd := geometry.PointAtAngle(p.AnchorPoint, p.Length, tipAngle)
	s.Segment(arcMiddle, tipEnd, st)

	if p.Waterproof {
		radiusEnd := geometry.PointAtAngle(p.AnchorPoint, halfLength, p.OrientationAngle+1.5*geometry.RightAngle)
		s.Segment(p.AnchorPoint, radiusEnd, st)
	}
	if p.HighVoltage {
		// Two short diagonal ticks across the stem, like arrow feathers.
		for _, fraction := range []float64{0.7, 0.85} {
			tickCenter := geometry.PointAtAngle(p.AnchorPoint, fraction*p.Length, tipAngle)
			tickStart := geometry.PointAtAngle(tickCenter, 0.15*p.Length, p.OrientationAngle+1.5*geometry.RightAngle)
			tickEnd := geometry.PointAtAngle(tickCenter, 0.15*p.Length, p.OrientationAngle-0.5*geometry.RightAngle)
			s.Segment(tickStart, tickEnd, st)
		}
	}
	if p.LowCurrent {
		s.Circle(tipEnd, 0.25*p.Length, st)
	}
}

// ElectricalCable is a cable route drawn as a chain of half arcs bulging to
// alternating sides, with a junction dot at the anchor point. The anchor
// point is the end the cable starts from.
type ElectricalCable struct {
	AnchorPoint      geometry.Point `yaml:"anchor_point" toml:"anchor_point"`
	Length           float64        `yaml:"length" toml:"length"`
	OrientationAngle float64        `yaml:"orientation_angle" toml:"orientation_angle"`
	// NumberOfArcs is the number of half arcs the cable is split into.
	NumberOfArcs int     `yaml:"number_of_arcs" toml:"number_of_arcs"`
	LineWidth    float64 `yaml:"line_width" toml:"line_width"`
	Color        string  `yaml:"color" toml:"color"`
}

var _ Element = (*ElectricalCable)(nil)

func (c *ElectricalCable) Validate() error {
	if err := requirePositive(c.Length, "electrical cable length"); err != nil {
		return err
	}
	if c.NumberOfArcs == 0 {
		c.NumberOfArcs = 4
	}
	if c.NumberOfArcs < 1 {
		return errors.New(errors.ErrCodeInvalidElement, "electrical cable must have at least one arc")
	}
	if c.LineWidth == 0 {
		c.LineWidth = DefaultLineWidth
	}
	if err := requirePositive(c.LineWidth, "electrical cable line width"); err != nil {
		return err
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	return checkColor(c.Color)
}

func (c *ElectricalCable) Draw(s drawing.Surface) {
	st := drawing.Style{Stroke: c.Color, Width: c.LineWidth}
	diameter := c.Length / float64(c.NumberOfArcs)
	radius := 0.5 * diameter

	s.Circle(c.AnchorPoint, 0.25*diameter, drawing.Style{Fill: c.Color})

	for i := 0; i < c.NumberOfArcs; i++ {
		center := geometry.PointAtAngle(c.AnchorPoint, (float64(i)+0.5)*diameter, c.OrientationAngle)
		theta1 := c.OrientationAngle
		theta2 := c.OrientationAngle + 2*geometry.RightAngle
		if i%2 == 1 {
			theta1, theta2 = theta2, c.OrientationAngle+4*geometry.RightAngle
		}
		s.EllipticalArc(center, radius, radius, 0, theta1, theta2, st)
	}
}
