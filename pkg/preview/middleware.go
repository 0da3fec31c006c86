package preview

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Nikolay-Lysenko/renovation/pkg/observability"
)

// instrument assigns each request an id, logs it, and feeds the server
// hooks.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		ctx := r.Context()

		observability.Server().OnRequest(ctx, r.Method, r.URL.Path)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		s.logger.Debug("served request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", elapsed,
		)
		observability.Server().OnResponse(ctx, r.Method, r.URL.Path, rec.status, elapsed)
	})
}

// statusRecorder captures the response status for logging. The zero status
// is 200, matching net/http's implicit WriteHeader.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
