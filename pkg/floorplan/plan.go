// Package floorplan assembles validated elements onto scaled pages and
// renders whole projects to PDF and PNG.
//
// A Plan is one page: a rectangular extent of the apartment drawn at a
// fixed scale, with an optional coordinate grid and an optional title. A
// Project is an ordered collection of plans sharing output settings.
package floorplan

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

// Grid line appearance, matching matplotlib's grid defaults.
const (
	gridColor      = "#b0b0b0"
	gridWidth      = 0.8
	gridMajorAlpha = 0.5
	gridMinorAlpha = 0.2
)

// Layout describes the page of a single floor plan. Its fields mirror the
// keys of the "layout" mapping in configuration files.
type Layout struct {
	// BottomLeftCorner and TopRightCorner bound the drawn extent of the
	// apartment, in meters.
	BottomLeftCorner geometry.Point `yaml:"bottom_left_corner" toml:"bottom_left_corner"`
	TopRightCorner   geometry.Point `yaml:"top_right_corner" toml:"top_right_corner"`
	// ScaleNumerator over ScaleDenominator is the plan scale; the default
	// 1:100 maps one meter of apartment to one centimeter of paper.
	ScaleNumerator   int `yaml:"scale_numerator" toml:"scale_numerator"`
	ScaleDenominator int `yaml:"scale_denominator" toml:"scale_denominator"`
	// GridMajorStep and GridMinorStep switch on grid lines with the given
	// spacing in meters. Zero leaves the corresponding grid off.
	GridMajorStep float64 `yaml:"grid_major_step" toml:"grid_major_step"`
	GridMinorStep float64 `yaml:"grid_minor_step" toml:"grid_minor_step"`
}

// ValidateAndSetDefaults checks the layout and fills omitted fields.
func (l *Layout) ValidateAndSetDefaults() error {
	if l.ScaleNumerator == 0 && l.ScaleDenominator == 0 {
		l.ScaleNumerator = 1
		l.ScaleDenominator = 100
	}
	if err := errors.ValidateScale(l.ScaleNumerator, l.ScaleDenominator); err != nil {
		return err
	}
	if l.TopRightCorner.X <= l.BottomLeftCorner.X || l.TopRightCorner.Y <= l.BottomLeftCorner.Y {
		return errors.New(
			errors.ErrCodeInvalidLayout,
			"top right corner must lie strictly above and to the right of bottom left corner",
		)
	}
	if l.GridMajorStep < 0 || l.GridMinorStep < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "grid steps must not be negative")
	}
	return nil
}

// Title is a caption painted above everything else on a plan. Its fields
// mirror the keys of the "title" mapping in configuration files.
type Title struct {
	Text     string  `yaml:"text" toml:"text"`
	FontSize float64 `yaml:"font_size" toml:"font_size"`
	// RelX and RelY position the text center relative to the page, from 0
	// (left or bottom edge) to 1 (right or top edge). Zero values mean the
	// defaults 0.5 and 0.95.
	RelX  float64 `yaml:"rel_x" toml:"rel_x"`
	RelY  float64 `yaml:"rel_y" toml:"rel_y"`
	Color string  `yaml:"color" toml:"color"`
}

// Plan is a single floor plan page. Elements are drawn as they are added,
// so a Plan only grows; there is no way to remove an element.
type Plan struct {
	page     *drawing.Page
	layout   Layout
	title    string
	elements int
	logger   *log.Logger
}

// New creates an empty plan for the given layout. A nil logger disables
// logging.
func New(layout Layout, logger *log.Logger) (*Plan, error) {
	if err := layout.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	k := 1000.0 * float64(layout.ScaleNumerator) / float64(layout.ScaleDenominator)
	p := &Plan{
		page:   drawing.NewPage(layout.BottomLeftCorner, layout.TopRightCorner, k),
		layout: layout,
		logger: logger,
	}
	p.drawGrid()

	w, h := p.page.Size()
	logger.Debug("created floor plan page", "width_mm", w, "height_mm", h)
	return p, nil
}

// Add validates each element and draws it onto the plan. The first invalid
// element stops the batch; elements before it stay drawn.
func (p *Plan) Add(elems ...elements.Element) error {
	for _, e := range elems {
		if err := e.Validate(); err != nil {
			return err
		}
		e.Draw(p.page)
		p.elements++
		p.logger.Debug("placed element", "type", fmt.Sprintf("%T", e), "total", p.elements)
	}
	return nil
}

// AddTitle paints a caption on the title layer, above all elements drawn
// before or after it, and records the text as the plan's name.
func (p *Plan) AddTitle(t Title) error {
	if t.Text == "" {
		return errors.New(errors.ErrCodeInvalidLayout, "title requires text")
	}
	if t.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "title font size must be positive")
	}
	if t.RelX == 0 {
		t.RelX = 0.5
	}
	if t.RelY == 0 {
		t.RelY = 0.95
	}
	if t.Color == "" {
		t.Color = "black"
	}
	if _, err := drawing.LookupColor(t.Color); err != nil {
		return err
	}

	at := geometry.Point{
		X: p.layout.BottomLeftCorner.X + t.RelX*(p.layout.TopRightCorner.X-p.layout.BottomLeftCorner.X),
		Y: p.layout.BottomLeftCorner.Y + t.RelY*(p.layout.TopRightCorner.Y-p.layout.BottomLeftCorner.Y),
	}
	p.page.SetLayer(drawing.TitleLayer)
	p.page.Text(at, t.Text, drawing.TextStyle{Size: t.FontSize, Color: t.Color})
	p.page.SetLayer(drawing.BaseLayer)

	p.title = t.Text
	p.logger.Debug("added title", "text", t.Text)
	return nil
}

// Title returns the text set by AddTitle, or an empty string.
func (p *Plan) Title() string {
	return p.title
}

// Layout returns the validated layout the plan was created with.
func (p *Plan) Layout() Layout {
	return p.layout
}

// ElementCount returns the number of elements drawn so far.
func (p *Plan) ElementCount() int {
	return p.elements
}

// Size returns the page dimensions in millimeters.
func (p *Plan) Size() (w, h float64) {
	return p.page.Size()
}

// WritePNG writes the plan as a PNG rasterized at the given resolution.
func (p *Plan) WritePNG(w io.Writer, dpi float64) error {
	if err := errors.ValidateDPI(dpi); err != nil {
		return err
	}
	if err := p.page.WritePNG(w, dpi); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to encode png")
	}
	return nil
}

func (p *Plan) drawGrid() {
	if p.layout.GridMinorStep > 0 {
		p.gridLines(p.layout.GridMinorStep, gridMinorAlpha)
	}
	if p.layout.GridMajorStep > 0 {
		p.gridLines(p.layout.GridMajorStep, gridMajorAlpha)
	}
}

func (p *Plan) gridLines(step, alpha float64) {
	st := drawing.Style{Stroke: gridColor, Width: gridWidth, Alpha: alpha}
	for _, x := range gridOffsets(p.layout.BottomLeftCorner.X, p.layout.TopRightCorner.X, step) {
		p.page.Segment(
			geometry.Point{X: x, Y: p.layout.BottomLeftCorner.Y},
			geometry.Point{X: x, Y: p.layout.TopRightCorner.Y},
			st,
		)
	}
	for _, y := range gridOffsets(p.layout.BottomLeftCorner.Y, p.layout.TopRightCorner.Y, step) {
		p.page.Segment(
			geometry.Point{X: p.layout.BottomLeftCorner.X, Y: y},
			geometry.Point{X: p.layout.TopRightCorner.X, Y: y},
			st,
		)
	}
}

// gridOffsets lists the grid line positions start, start+step, ... strictly
// below stop. The lower page edge gets a line, the upper one does not.
func gridOffsets(start, stop, step float64) []float64 {
	var offsets []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= stop {
			return offsets
		}
		offsets = append(offsets, v)
	}
}
