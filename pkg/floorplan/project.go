package floorplan

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	canvaspdf "github.com/tdewolff/canvas/renderers/pdf"

	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/observability"
)

// DefaultDPI is the raster resolution used when a project does not set
// its own.
const DefaultDPI = 100.0

// Project is an ordered collection of floor plans rendered together: one
// PDF page per plan, or one PNG file per plan.
type Project struct {
	Plans  []*Plan
	DPI    float64
	Logger *log.Logger
}

// NewProject bundles plans for rendering. Zero dpi selects DefaultDPI, a
// nil logger disables logging.
func NewProject(plans []*Plan, dpi float64, logger *log.Logger) (*Project, error) {
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if err := errors.ValidateDPI(dpi); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Project{Plans: plans, DPI: dpi, Logger: logger}, nil
}

// WritePDF writes all plans into w as a single PDF document, one page per
// plan. Pages keep their individual sizes, so differently scaled plans
// coexist in one document.
func (p *Project) WritePDF(ctx context.Context, w io.Writer) error {
	if len(p.Plans) == 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "project has no floor plans")
	}

	pw, ph := p.Plans[0].page.Size()
	doc := canvaspdf.New(w, pw, ph, nil)
	for i, plan := range p.Plans {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "rendering canceled")
		}
		if i > 0 {
			pw, ph = plan.page.Size()
			doc.NewPage(pw, ph)
		}
		plan.page.RenderTo(doc)
	}
	if err := doc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to encode pdf")
	}
	return nil
}

// RenderPDF writes the document produced by WritePDF to a file.
func (p *Project) RenderPDF(ctx context.Context, path string) error {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, "pdf", len(p.Plans))
	err := p.renderPDF(ctx, path)
	observability.Render().OnRenderComplete(ctx, "pdf", time.Since(start), err)
	return err
}

func (p *Project) renderPDF(ctx context.Context, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if len(p.Plans) == 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "project has no floor plans")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to create %s", path)
	}
	if err := p.WritePDF(ctx, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to write %s", path)
	}
	p.Logger.Info("rendered pdf", "path", path, "pages", len(p.Plans))
	return nil
}

// RenderPNGs writes each plan into its own PNG file under dir, creating the
// directory if needed. Files are named after plan titles; untitled plans
// fall back to their position in the project.
func (p *Project) RenderPNGs(ctx context.Context, dir string) error {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, "png", len(p.Plans))
	err := p.renderPNGs(ctx, dir)
	observability.Render().OnRenderComplete(ctx, "png", time.Since(start), err)
	return err
}

func (p *Project) renderPNGs(ctx context.Context, dir string) error {
	if err := errors.ValidateOutputPath(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to create %s", dir)
	}

	for i, plan := range p.Plans {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "rendering canceled")
		}
		name := pngFileName(plan.Title(), i)
		if err := errors.ValidateFileName(name); err != nil {
			return err
		}
		path := filepath.Join(dir, name)

		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "failed to create %s", path)
		}
		if err := plan.WritePNG(f, p.DPI); err != nil {
			f.Close()
			return errors.Wrap(errors.ErrCodeRender, err, "failed to render %s", path)
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "failed to write %s", path)
		}
		p.Logger.Info("rendered png", "path", path)
	}
	return nil
}

// pngFileName names the output file of one plan.
func pngFileName(title string, index int) string {
	name := title
	if name == "" {
		name = strconv.Itoa(index) + ".png"
	}
	if !strings.HasSuffix(name, ".png") {
		name += ".png"
	}
	return name
}
