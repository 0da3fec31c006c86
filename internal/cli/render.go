package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nikolay-Lysenko/renovation/pkg/cache"
	"github.com/Nikolay-Lysenko/renovation/pkg/config"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
	"github.com/Nikolay-Lysenko/renovation/pkg/observability"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	configPath string  // configuration file (YAML or TOML)
	pdfFile    string  // PDF output path, overrides the config's project section
	pngDir     string  // PNG output directory, overrides the config's project section
	dpi        float64 // raster resolution for PNG export
	noCache    bool    // disable the rendered artifact cache
}

// renderCommand creates the render command for exporting floor plans.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a configuration to PDF and PNG",
		Long: `Render a floor plan configuration to vector output.

The render command loads a YAML or TOML configuration, builds every floor
plan it defines, and exports the project as a multi-page PDF and/or a
directory of per-plan PNGs. Output destinations come from the config's
project section; the --pdf, --png-dir, and --dpi flags override it.

Rendered documents are cached locally keyed by the configuration content,
so an unchanged configuration is served from cache on the second run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), &opts, cmd.Flags().Changed("dpi"))
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (.yaml, .yml, or .toml)")
	cmd.Flags().StringVar(&opts.pdfFile, "pdf", "", "PDF output path (overrides the config)")
	cmd.Flags().StringVar(&opts.pngDir, "png-dir", "", "PNG output directory (overrides the config)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", floorplan.DefaultDPI, "raster resolution for PNG export")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// runRender loads the configuration, builds the project, and exports it.
// Flags take precedence over the config's project section for destinations
// and resolution.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts, dpiSet bool) error {
	raw, err := os.ReadFile(opts.configPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read config file %s", opts.configPath)
	}
	configHash := cache.Hash(raw)

	buildStart := time.Now()
	observability.Render().OnBuildStart(ctx, opts.configPath)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		observability.Render().OnBuildComplete(ctx, opts.configPath, 0, 0, time.Since(buildStart), err)
		return err
	}
	if dpiSet {
		cfg.Project.DPI = opts.dpi
	}

	project, err := config.Build(cfg, c.Logger)
	if err != nil {
		observability.Render().OnBuildComplete(ctx, opts.configPath, 0, 0, time.Since(buildStart), err)
		return err
	}

	elementCount := 0
	for _, plan := range project.Plans {
		elementCount += plan.ElementCount()
	}
	observability.Render().OnBuildComplete(ctx, opts.configPath, len(project.Plans), elementCount, time.Since(buildStart), nil)

	pdfFile := opts.pdfFile
	if pdfFile == "" {
		pdfFile = cfg.Project.PDFFile
	}
	pngDir := opts.pngDir
	if pngDir == "" {
		pngDir = cfg.Project.PNGDir
	}
	if pdfFile == "" && pngDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "nothing to render: pass --pdf or --png-dir, or fill the config's project section")
	}

	artifacts, err := newArtifactCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d plans...", len(project.Plans)))
	spinner.Start()

	cacheHit := false
	if pdfFile != "" {
		cacheHit, err = c.renderDocument(ctx, project, pdfFile, configHash, artifacts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
	}
	if pngDir != "" {
		if err := project.RenderPNGs(ctx, pngDir); err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
	}
	spinner.Stop()

	printSuccess("Render complete")
	if pdfFile != "" {
		printFile(pdfFile)
	}
	if pngDir != "" {
		printFile(pngDir + string(filepath.Separator))
	}
	printStats(len(project.Plans), elementCount, cacheHit)
	printNewline()
	printNextStep("Preview", "renovation preview -c "+opts.configPath)

	return nil
}

// renderDocument writes the project PDF to path, serving it from the artifact
// cache when the configuration has not changed since the last render.
func (c *CLI) renderDocument(ctx context.Context, project *floorplan.Project, path, configHash string, artifacts cache.Cache) (bool, error) {
	key := newKeyer().DocumentKey(configHash)

	if data, ok, err := artifacts.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "document")
		if err := errors.ValidateOutputPath(path); err != nil {
			return false, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return false, errors.Wrap(errors.ErrCodeRender, err, "failed to write cached document to %s", path)
		}
		return true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "document")

	if err := project.RenderPDF(ctx, path); err != nil {
		return false, err
	}

	// The document is on disk at this point; populating the cache is best
	// effort and never fails the render.
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil
	}
	if err := artifacts.Set(ctx, key, data, artifactTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "document", len(data))
	}
	return false, nil
}
