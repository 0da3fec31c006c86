package drawing

import "github.com/Nikolay-Lysenko/renovation/pkg/geometry"

// Call records for the Recorder surface. Each mirrors the parameters of
// one Surface primitive.
type (
	RectangleCall struct {
		Corner        geometry.Point
		Width, Height float64
		Angle         float64
		Style         Style
	}

	PolygonCall struct {
		Vertices []geometry.Point
		Style    Style
	}

	CircleCall struct {
		Center geometry.Point
		Radius float64
		Style  Style
	}

	ArcCall struct {
		Center         geometry.Point
		RX, RY         float64
		Rotation       float64
		Theta1, Theta2 float64
		Style          Style
	}

	SegmentCall struct {
		From, To geometry.Point
		Style    Style
	}

	TextCall struct {
		At      geometry.Point
		Content string
		Style   TextStyle
	}
)

// Recorder is a Surface that records primitive calls instead of painting
// them. Element tests assert against the recorded geometry.
type Recorder struct {
	Rectangles []RectangleCall
	Polygons   []PolygonCall
	Circles    []CircleCall
	Arcs       []ArcCall
	Segments   []SegmentCall
	Texts      []TextCall
}

var _ Surface = (*Recorder)(nil)

// Rectangle implements Surface.
func (r *Recorder) Rectangle(corner geometry.Point, width, height, angle float64, st Style) {
	r.Rectangles = append(r.Rectangles, RectangleCall{
		Corner: corner,
		Width:  width,
		Height: height,
		Angle:  angle,
		Style:  st,
	})
}

// Polygon implements Surface.
func (r *Recorder) Polygon(vertices []geometry.Point, st Style) {
	copied := make([]geometry.Point, len(vertices))
	copy(copied, vertices)
	r.Polygons = append(r.Polygons, PolygonCall{Vertices: copied, Style: st})
}

// Circle implements Surface.
func (r *Recorder) Circle(center geometry.Point, radius float64, st Style) {
	r.Circles = append(r.Circles, CircleCall{Center: center, Radius: radius, Style: st})
}

// EllipticalArc implements Surface.
func (r *Recorder) EllipticalArc(center geometry.Point, rx, ry, rotation, theta1, theta2 float64, st Style) {
	r.Arcs = append(r.Arcs, ArcCall{
		Center:   center,
		RX:       rx,
		RY:       ry,
		Rotation: rotation,
		Theta1:   theta1,
		Theta2:   theta2,
		Style:    st,
	})
}

// Segment implements Surface.
func (r *Recorder) Segment(from, to geometry.Point, st Style) {
	r.Segments = append(r.Segments, SegmentCall{From: from, To: to, Style: st})
}

// Text implements Surface.
func (r *Recorder) Text(at geometry.Point, content string, st TextStyle) {
	r.Texts = append(r.Texts, TextCall{At: at, Content: content, Style: st})
}

// Len returns the total number of recorded primitives.
func (r *Recorder) Len() int {
	return len(r.Rectangles) + len(r.Polygons) + len(r.Circles) +
		len(r.Arcs) + len(r.Segments) + len(r.Texts)
}
