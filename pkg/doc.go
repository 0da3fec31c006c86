// Package pkg provides the core libraries for Renovation floor plan drawing.
//
// # Overview
//
// Renovation turns declarative YAML/TOML descriptions of apartments into
// print-ready vector drawings to scale. The pkg directory is organized into
// four main areas:
//
//  1. [elements] - The symbol library (walls, openings, electrics, lighting, annotations)
//  2. [floorplan] - Page assembly (scale, grid, titles) and multi-page PDF/PNG export
//  3. [config] - Declarative project descriptions, the element registry, inheritance
//  4. [drawing] - The vector surface and its tdewolff/canvas backend
//
// # Architecture
//
// The typical data flow through Renovation:
//
//	YAML/TOML config
//	         ↓
//	    [config] package (decode, registry lookup, reusable element sets)
//	         ↓
//	    [elements] package (validate parameters, draw symbols)
//	         ↓
//	    [floorplan] package (scaled pages, background grid, titles)
//	         ↓
//	    PDF / PNG output
//
// # Quick Start
//
// Render a whole project from a config file:
//
//	import (
//	    "context"
//	    "github.com/Nikolay-Lysenko/renovation/pkg/config"
//	)
//
//	project, _ := config.LoadProject("flat.yaml", nil)
//	_ = project.RenderPDF(context.Background(), "flat.pdf")
//	_ = project.RenderPNGs(context.Background(), "plans")
//
// Or assemble a plan programmatically:
//
//	import (
//	    "github.com/Nikolay-Lysenko/renovation/pkg/elements"
//	    "github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
//	    "github.com/Nikolay-Lysenko/renovation/pkg/geometry"
//	)
//
//	plan, _ := floorplan.New(floorplan.Layout{
//	    BottomLeftCorner: geometry.Point{X: 0, Y: 0},
//	    TopRightCorner:   geometry.Point{X: 5, Y: 4},
//	    ScaleNumerator:   1,
//	    ScaleDenominator: 100,
//	}, nil)
//	_ = plan.Add(&elements.Wall{
//	    AnchorPoint: geometry.Point{X: 0.5, Y: 0.5},
//	    Length:      4,
//	    Thickness:   0.2,
//	})
//
// # Main Packages
//
// ## Domain
//
// [elements] - Thirteen drawable symbol kinds: wall, window, door, power
// outlet, electrical cable, ceiling lamp, wall lamp, LED strip, switch,
// dimension arrow, text box, line, polygon. Each element validates its
// parameters, fills defaults, and draws itself onto a [drawing.Surface] in
// meters.
//
// [floorplan] - Plan (one page at a fixed scale: layout bounds, optional
// background grid, title, placed elements) and Project (a set of plans
// exported together: one multi-page PDF, one PNG per plan).
//
// [config] - File loading (YAML via yaml.v3, TOML via BurntSushi/toml), the
// kind registry mapping snake_case names to element constructors, reusable
// element sets, and [config.Build], which turns a parsed Config into a
// renderable Project.
//
// [geometry] - Planar kernel shared by every symbol: points in meters,
// rotation about an arbitrary origin, polar stepping.
//
// ## Rendering
//
// [drawing] - The Surface interface (rectangles, polygons, circles,
// elliptical arcs, segments, text) with two implementations: Page, backed by
// tdewolff/canvas for real vector output, and Recorder, an in-memory test
// double that captures draw calls.
//
// [outline] - Graphviz structure diagrams of a config: one node per floor
// plan with element counts, rendered to DOT, SVG, or PNG via
// goccy/go-graphviz.
//
// [preview] - A local chi HTTP server that serves rendered plans as PNGs and
// the whole project as a PDF, with per-plan artifact caching.
//
// ## Infrastructure
//
// [cache] - Content-addressed artifact cache keyed by config hash. FileCache
// stores rendered artifacts under the user cache directory with TTL expiry;
// NullCache disables caching without branching at call sites.
//
// [observability] - Process-wide render, cache, and server hook registries.
// Hooks default to no-ops; the CLI installs logging hooks at startup.
//
// [errors] - Coded errors (NOT_FOUND, INVALID_CONFIG, RENDER_ERROR, ...)
// with user-facing messages, plus input validators shared by the CLI and the
// preview server.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Common Workflows
//
// Inspect the element vocabulary:
//
//	for _, kind := range config.Kinds() {
//	    params, _ := config.Parameters(kind)
//	    fmt.Println(kind, params)
//	}
//
// Diagram a config's structure:
//
//	cfg, _ := config.Load("flat.yaml")
//	dot := outline.ToDOT(cfg, "flat", outline.Options{})
//	svg, _ := outline.RenderSVG(ctx, dot)
//
// Serve a live preview:
//
//	project, _ := config.LoadProject("flat.yaml", logger)
//	srv := preview.NewServer(project, configHash, artifacts, keyer, logger)
//	_ = srv.ListenAndServe(ctx, ":8080")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/elements/...   # Specific package
//
// Element tests draw onto [drawing.Recorder] and assert on the captured
// shapes, so no image diffing is involved.
//
// [elements]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/elements
// [floorplan]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/floorplan
// [config]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/config
// [config.Build]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/config#Build
// [geometry]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/geometry
// [drawing]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/drawing
// [drawing.Surface]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/drawing#Surface
// [drawing.Recorder]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/drawing#Recorder
// [outline]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/outline
// [preview]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/preview
// [cache]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/cache
// [observability]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/observability
// [errors]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/Nikolay-Lysenko/renovation/pkg/buildinfo
package pkg
