package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nikolay-Lysenko/renovation/pkg/config"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/outline"
)

// outlineOpts holds the command-line flags for the outline command.
type outlineOpts struct {
	configPath string // configuration file (YAML or TOML)
	output     string // output file path, derived from the config path if empty
	format     string // output format: "dot", "svg", or "png"
	detailed   bool   // include layout dimensions in plan labels
}

// outlineFormats is the set of supported outline output formats.
var outlineFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// validateOutlineFormat checks that the requested format is supported.
func validateOutlineFormat(f string) error {
	if !outlineFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// outlineCommand creates the outline command for structural overviews.
func (c *CLI) outlineCommand() *cobra.Command {
	opts := outlineOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Generate a graphviz overview of a project's structure",
		Long: `Generate a graphviz overview of a project's structure.

The outline command reads a configuration and draws its shape as a graph:
the project at the root, one node per floor plan, reusable element sets as
shared dashed nodes, and per-plan element kind counts as leaves. It answers
"what is in this config" without rendering a single wall.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutlineFormat(opts.format); err != nil {
				return err
			}
			return c.runOutline(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (.yaml, .yml, or .toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <config>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include layout dimensions in plan labels")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// runOutline loads the configuration and writes its outline in the requested format.
func (c *CLI) runOutline(ctx context.Context, opts *outlineOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	dot := outline.ToDOT(cfg, projectName(opts.configPath), outline.Options{Detailed: opts.detailed})
	logger.Debugf("Generated DOT: %d bytes", len(dot))

	data := []byte(dot)
	if opts.format != "dot" {
		spinner := newSpinnerWithContext(ctx, "Rendering outline...")
		spinner.Start()

		switch opts.format {
		case "svg":
			data, err = outline.RenderSVG(ctx, dot)
		case "png":
			data, err = outline.RenderPNG(ctx, dot)
		}
		if err != nil {
			spinner.StopWithError("Outline failed")
			return err
		}
		spinner.Stop()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(opts.configPath, filepath.Ext(opts.configPath)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to write outline to %s", outputPath)
	}

	printSuccess("Outline complete")
	printFile(outputPath)
	printDetail("%d floor plans", len(cfg.FloorPlans))

	return nil
}

// projectName derives a display name from the config file path.
func projectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
