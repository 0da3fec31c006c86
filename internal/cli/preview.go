package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nikolay-Lysenko/renovation/pkg/cache"
	"github.com/Nikolay-Lysenko/renovation/pkg/config"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/preview"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	configPath string // configuration file (YAML or TOML)
	addr       string // listen address
	noCache    bool   // disable the rendered artifact cache
}

// previewCommand creates the preview command for serving plans over HTTP.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve rendered floor plans over HTTP",
		Long: `Serve rendered floor plans over HTTP.

The preview command builds the project once and serves an HTML index with
one PNG per floor plan plus the combined PDF document. Rendered artifacts
are cached keyed by the configuration content, so reloads are instant until
the config changes. Stop the server with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (.yaml, .yml, or .toml)")
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// runPreview builds the project and serves it until the context is cancelled.
func (c *CLI) runPreview(ctx context.Context, opts *previewOpts) error {
	raw, err := os.ReadFile(opts.configPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read config file %s", opts.configPath)
	}
	configHash := cache.Hash(raw)

	project, err := config.LoadProject(opts.configPath, c.Logger)
	if err != nil {
		return err
	}

	artifacts, err := newArtifactCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	srv := preview.NewServer(project, configHash, artifacts, newKeyer(), c.Logger)

	printInfo("Serving %d plans at %s", len(project.Plans), StyleLink.Render(previewURL(opts.addr)))
	printDetail("Press Ctrl-C to stop")

	return srv.ListenAndServe(ctx, opts.addr)
}

// previewURL turns a listen address into something clickable.
// Addresses like ":8080" get a localhost host part.
func previewURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
