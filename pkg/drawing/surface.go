// Package drawing defines the primitive contract between floor plan elements
// and the vector surface they are painted on.
//
// Elements draw through the narrow Surface interface and never see the
// concrete backend. Two implementations are provided: Page, backed by
// tdewolff/canvas and able to export PDF and PNG, and Recorder, which
// captures primitive calls for tests.
//
// All geometry passed to a Surface is in data space (meters). Stroke widths,
// dash lengths and font sizes are paper space quantities in typographic
// points; they keep their physical size regardless of the plan scale.
package drawing

import "github.com/Nikolay-Lysenko/renovation/pkg/geometry"

// Dash patterns for stroked lines, expressed in multiples of the stroke
// width. The values are matplotlib's defaults, so dashed and dotted walls
// keep their familiar look.
var (
	Solid   []float64
	Dashed  = []float64{3.7, 1.6}
	Dotted  = []float64{1.0, 1.65}
	DashDot = []float64{6.4, 1.6, 1.0, 1.6}
)

// Style describes how a single primitive is painted. Color fields hold CSS
// color names or "#rrggbb" hex strings; an empty field disables that paint
// entirely, so a fill-only shape leaves Stroke empty and vice versa.
type Style struct {
	Fill   string    // fill color token
	Stroke string    // stroke color token
	Width  float64   // stroke width in points
	Dashes []float64 // dash pattern in stroke widths, nil for solid
	Alpha  float64   // opacity in (0, 1]; zero means opaque
}

// TextStyle describes a text primitive.
type TextStyle struct {
	Size     float64 // font size in points
	Color    string  // color token
	Rotation float64 // degrees counterclockwise about the anchor
}

// Surface is the set of primitives elements are drawn with.
type Surface interface {
	// Rectangle paints a width by height rectangle whose bottom-left
	// corner sits at corner, rotated by angle degrees about that corner.
	Rectangle(corner geometry.Point, width, height, angle float64, st Style)

	// Polygon paints a closed polygon through the given vertices.
	Polygon(vertices []geometry.Point, st Style)

	// Circle paints a circle of the given radius centered on center.
	Circle(center geometry.Point, radius float64, st Style)

	// EllipticalArc strokes the part of an ellipse centered on center with
	// semi-axes rx and ry, rotated by rotation degrees, that runs from
	// parametric angle theta1 to theta2 (degrees, counterclockwise when
	// theta2 > theta1). Fill colors are ignored; arcs are open curves.
	EllipticalArc(center geometry.Point, rx, ry, rotation, theta1, theta2 float64, st Style)

	// Segment strokes a straight line from one point to another.
	Segment(from, to geometry.Point, st Style)

	// Text paints content centered horizontally and vertically on at,
	// rotated about that point.
	Text(at geometry.Point, content string, st TextStyle)
}
