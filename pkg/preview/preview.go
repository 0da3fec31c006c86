// Package preview serves a rendered project over HTTP, so config edits can
// be inspected in a browser without exporting files.
//
// Artifacts are cached content-addressed: keys derive from the hash of the
// configuration file, so a restarted server with an unchanged config serves
// straight from the cache.
package preview

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/Nikolay-Lysenko/renovation/pkg/cache"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
	"github.com/Nikolay-Lysenko/renovation/pkg/floorplan"
	"github.com/Nikolay-Lysenko/renovation/pkg/observability"
)

// artifactTTL bounds how long rendered artifacts stay cached. Config
// changes re-key the cache anyway; the TTL only limits disk growth.
const artifactTTL = 24 * time.Hour

// Server serves one built project.
type Server struct {
	project    *floorplan.Project
	configHash string
	artifacts  cache.Cache
	keyer      cache.Keyer
	logger     *log.Logger
}

// NewServer creates a preview server for a built project. configHash keys
// the artifact cache; pass the hash of the raw config file. Nil artifacts,
// keyer, or logger select a null cache, the default keyer, and a discard
// logger.
func NewServer(project *floorplan.Project, configHash string, artifacts cache.Cache, keyer cache.Keyer, logger *log.Logger) *Server {
	if artifacts == nil {
		artifacts = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{
		project:    project,
		configHash: configHash,
		artifacts:  artifacts,
		keyer:      keyer,
		logger:     logger,
	}
}

// Handler returns the HTTP handler with all preview routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.instrument)
	r.Get("/", s.handleIndex)
	r.Get("/plans/{index}.png", s.handlePlanPNG)
	r.Get("/document.pdf", s.handleDocumentPDF)
	r.Get("/healthz", s.handleHealthz)
	return r
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>renovation preview</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 48rem; }
img { max-width: 100%; border: 1px solid #ccc; margin-bottom: 2rem; }
</style>
</head>
<body>
<h1>Floor plans</h1>
<p><a href="/document.pdf">Download the PDF document</a></p>
{{range .Plans}}
<h2>{{.Name}}</h2>
<img src="{{.URL}}" alt="{{.Name}}">
{{end}}
</body>
</html>
`))

type indexData struct {
	Plans []planLink
}

type planLink struct {
	Name string
	URL  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{Plans: make([]planLink, len(s.project.Plans))}
	for i, plan := range s.project.Plans {
		name := plan.Title()
		if name == "" {
			name = "floor plan " + strconv.Itoa(i)
		}
		data.Plans[i] = planLink{Name: name, URL: "/plans/" + strconv.Itoa(i) + ".png"}
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "failed to render index"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handlePlanPNG(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= len(s.project.Plans) {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	key := s.keyer.PlanKey(s.configHash, index, cache.PlanKeyOpts{DPI: s.project.DPI})
	if data, ok, err := s.artifacts.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "plan")
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	var buf bytes.Buffer
	if err := s.project.Plans[index].WritePNG(&buf, s.project.DPI); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.artifacts.Set(ctx, key, buf.Bytes(), artifactTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "plan", buf.Len())
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) handleDocumentPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := s.keyer.DocumentKey(s.configHash)
	if data, ok, err := s.artifacts.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "document")
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "document")

	var buf bytes.Buffer
	if err := s.project.WritePDF(ctx, &buf); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.artifacts.Set(ctx, key, buf.Bytes(), artifactTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "document", buf.Len())
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Write(buf.Bytes())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	observability.Server().OnError(r.Context(), r.Method, r.URL.Path, err)
	s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("preview server listening", "addr", addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		<-done
		return nil
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "preview server failed")
}
