package drawing

import (
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

// mmPerPoint converts typographic points to millimeters.
const mmPerPoint = 25.4 / 72.0

// Layers used on a page. Elements and grid lines live on the base layer;
// the title layer is always painted above them.
const (
	BaseLayer  = 0
	TitleLayer = 1
)

// Page is a vector drawing surface backed by tdewolff/canvas. Data space
// coordinates are meters; the page itself is sized in millimeters according
// to the scale, so a 5 x 3 m extent at 1:100 becomes a 50 x 30 mm page.
//
// Coordinates are converted up front rather than through a view matrix so
// that stroke widths and dash patterns stay in paper space.
type Page struct {
	canvas *canvas.Canvas
	ctx    *canvas.Context
	k      float64        // millimeters per data meter
	origin geometry.Point // data point mapped to the page corner (0,0)
}

var _ Surface = (*Page)(nil)

// NewPage allocates a white page covering the data space rectangle between
// bottomLeft and topRight, with k millimeters of paper per meter of data.
func NewPage(bottomLeft, topRight geometry.Point, k float64) *Page {
	w := (topRight.X - bottomLeft.X) * k
	h := (topRight.Y - bottomLeft.Y) * k

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(w, h))

	return &Page{canvas: c, ctx: ctx, k: k, origin: bottomLeft}
}

// Size returns the page dimensions in millimeters.
func (p *Page) Size() (w, h float64) {
	return p.canvas.Size()
}

// Scale returns the page scale in millimeters per meter.
func (p *Page) Scale() float64 {
	return p.k
}

// SetLayer switches the layer subsequent primitives are painted on. Higher
// layers render above lower ones regardless of paint order.
func (p *Page) SetLayer(z int) {
	p.ctx.SetZIndex(z)
}

// xy maps a data space point to page millimeters.
func (p *Page) xy(pt geometry.Point) (float64, float64) {
	return (pt.X - p.origin.X) * p.k, (pt.Y - p.origin.Y) * p.k
}

// mm maps a data space length to page millimeters.
func (p *Page) mm(meters float64) float64 {
	return meters * p.k
}

// applyStyle translates a Style into the context's paint state.
func (p *Page) applyStyle(st Style) {
	if st.Fill != "" {
		p.ctx.SetFillColor(withAlpha(ParseColor(st.Fill), st.Alpha))
	} else {
		p.ctx.SetFillColor(canvas.Transparent)
	}

	if st.Stroke == "" {
		p.ctx.SetStrokeColor(canvas.Transparent)
		p.ctx.SetDashes(0.0)
		return
	}

	p.ctx.SetStrokeColor(withAlpha(ParseColor(st.Stroke), st.Alpha))
	w := st.Width * mmPerPoint
	p.ctx.SetStrokeWidth(w)
	if len(st.Dashes) == 0 {
		p.ctx.SetDashes(0.0)
		return
	}
	dashes := make([]float64, len(st.Dashes))
	for i, d := range st.Dashes {
		dashes[i] = d * w
	}
	p.ctx.SetDashes(0.0, dashes...)
}

// Rectangle implements Surface.
func (p *Page) Rectangle(corner geometry.Point, width, height, angle float64, st Style) {
	path := canvas.Rectangle(p.mm(width), p.mm(height))
	if angle != 0 {
		path = path.Transform(canvas.Identity.Rotate(angle))
	}
	p.applyStyle(st)
	x, y := p.xy(corner)
	p.ctx.DrawPath(x, y, path)
}

// Polygon implements Surface.
func (p *Page) Polygon(vertices []geometry.Point, st Style) {
	if len(vertices) < 2 {
		return
	}
	path := &canvas.Path{}
	for i, v := range vertices {
		x, y := p.xy(v)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	p.applyStyle(st)
	p.ctx.DrawPath(0.0, 0.0, path)
}

// Circle implements Surface.
func (p *Page) Circle(center geometry.Point, radius float64, st Style) {
	cx, cy := p.xy(center)
	path := arcPath(cx, cy, p.mm(radius), p.mm(radius), 0, 0, 360)
	path.Close()
	p.applyStyle(st)
	p.ctx.DrawPath(0.0, 0.0, path)
}

// EllipticalArc implements Surface.
func (p *Page) EllipticalArc(center geometry.Point, rx, ry, rotation, theta1, theta2 float64, st Style) {
	cx, cy := p.xy(center)
	path := arcPath(cx, cy, p.mm(rx), p.mm(ry), rotation, theta1, theta2)
	st.Fill = ""
	p.applyStyle(st)
	p.ctx.DrawPath(0.0, 0.0, path)
}

// Segment implements Surface.
func (p *Page) Segment(from, to geometry.Point, st Style) {
	x0, y0 := p.xy(from)
	x1, y1 := p.xy(to)
	path := &canvas.Path{}
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	st.Fill = ""
	p.applyStyle(st)
	p.ctx.DrawPath(0.0, 0.0, path)
}

// Text implements Surface. Pages without a usable system font skip text
// silently; geometry is still rendered.
func (p *Page) Text(at geometry.Point, content string, st TextStyle) {
	if content == "" {
		return
	}
	family, err := FontFamily()
	if err != nil {
		return
	}
	face := family.Face(st.Size, ParseColor(st.Color), canvas.FontRegular, canvas.FontNormal)
	line := canvas.NewTextLine(face, content, canvas.Center)

	// Center the text box on the anchor before rotating about it.
	bounds := line.Bounds()
	ax, ay := p.xy(at)
	x := ax - (bounds.X0+bounds.X1)/2.0
	y := ay - (bounds.Y0+bounds.Y1)/2.0

	if st.Rotation != 0 {
		p.ctx.Push()
		p.ctx.RotateAbout(st.Rotation, ax, ay)
		p.ctx.DrawText(x, y, line)
		p.ctx.Pop()
		return
	}
	p.ctx.DrawText(x, y, line)
}

// RenderTo replays the recorded page onto another renderer. Used for
// multi-page PDF assembly.
func (p *Page) RenderTo(r canvas.Renderer) {
	p.canvas.RenderTo(r)
}

// WritePNG writes the page as a PNG rasterized at the given resolution in
// dots per inch.
func (p *Page) WritePNG(w io.Writer, dpi float64) error {
	return p.canvas.Write(w, renderers.PNG(canvas.DPI(dpi)))
}

// WritePDF writes the page as a standalone single page PDF document.
func (p *Page) WritePDF(w io.Writer) error {
	return p.canvas.Write(w, renderers.PDF())
}

// arcPath builds an open elliptical arc path in page coordinates. The pen
// starts on the theta1 point of the ellipse so the arc is positioned by its
// center rather than by the current position.
func arcPath(cx, cy, rx, ry, rotation, theta1, theta2 float64) *canvas.Path {
	sx, sy := ellipsePoint(cx, cy, rx, ry, rotation, theta1)
	path := &canvas.Path{}
	path.MoveTo(sx, sy)
	path.Arc(rx, ry, rotation, theta1, theta2)
	return path
}

// ellipsePoint evaluates the rotated ellipse at parametric angle theta.
func ellipsePoint(cx, cy, rx, ry, rotation, theta float64) (x, y float64) {
	sinp, cosp := math.Sincos(rotation * math.Pi / 180.0)
	sint, cost := math.Sincos(theta * math.Pi / 180.0)
	return cx + rx*cost*cosp - ry*sint*sinp, cy + rx*cost*sinp + ry*sint*cosp
}
