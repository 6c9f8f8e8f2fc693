package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/dropDatabas3/littlejohn/internal/http/middlewares"
)

// registerHealthRoutes mounts /readyz. Public, no auth.
func registerHealthRoutes(r chi.Router, deps Deps) {
	if deps.Health == nil {
		return
	}

	// No logging for health checks, they are frequent.
	r.Method(http.MethodGet, "/readyz", mw.Chain(
		http.HandlerFunc(deps.Health.Readyz),
		mw.WithRecover(),
		mw.WithRequestID(),
	))
}
