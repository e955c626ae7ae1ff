// internal/router/router.go
//
// Root HTTP handler.
//
// Context
// -------
// One chi router serves the whole site.  Middleware order matters:
//
//  1. RequestID, request-info enrichment, and the zap request logger wrap
//     everything so redirects and panics are logged with the client UA.
//  2. Recoverer turns panics into 500s below the logger.
//  3. ForceHTTPS (308) and security headers.
//  4. For content paths only: routing.Middleware resolves the Query, then
//     the template_redirect action may end the request, then the public
//     renderer runs.
//
// `/health` and `/metrics` bypass routing and the plugins.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/singlecat/internal/hooks"
	"github.com/yanizio/singlecat/internal/middleware"
	"github.com/yanizio/singlecat/internal/requestinfo"
	"github.com/yanizio/singlecat/internal/routing"
)

// Deps is everything the router mounts.
type Deps struct {
	Resolver   *routing.Resolver
	Hooks      *hooks.Hooks
	Public     http.Handler
	ForceHTTPS bool

	// Ready, when set, backs /health (e.g. a database ping).
	Ready func(context.Context) error
}

// New builds the handler.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(requestinfo.Enrich)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.ForceHTTPS(d.ForceHTTPS))
	r.Use(middleware.Security(d.ForceHTTPS))

	r.Get("/health", health(d.Ready))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(content chi.Router) {
		content.Use(routing.Middleware(d.Resolver))
		content.Use(d.Hooks.TemplateRedirectMiddleware)
		content.Handle("/*", d.Public)
	})

	return r
}

func health(ready func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				zap.L().Warn("health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))
				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
