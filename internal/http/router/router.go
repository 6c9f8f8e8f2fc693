// Package router assembles the HTTP routes and their middleware chains.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authctrl "github.com/dropDatabas3/littlejohn/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/littlejohn/internal/http/controllers/health"
	mw "github.com/dropDatabas3/littlejohn/internal/http/middlewares"
)

// Deps contains everything the router mounts.
type Deps struct {
	Auth   *authctrl.Controllers
	Health *healthctrl.HealthController

	// Metrics is the instrumentation middleware; MetricsHandler serves the
	// scrape endpoint. Both optional.
	Metrics        mw.Middleware
	MetricsHandler http.Handler
}

// New builds the service router.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	registerAuthRoutes(r, deps)
	registerHealthRoutes(r, deps)

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	return r
}
