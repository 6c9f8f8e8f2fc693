package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/dropDatabas3/littlejohn/internal/http/middlewares"
)

// registerAuthRoutes mounts the auth endpoints.
func registerAuthRoutes(r chi.Router, deps Deps) {
	c := deps.Auth
	if c == nil {
		return
	}

	r.Method(http.MethodPost, "/v2/auth/register", authHandler(deps, http.HandlerFunc(c.Register.Register)))
	r.Method(http.MethodPost, "/v2/auth/login", authHandler(deps, http.HandlerFunc(c.Login.Login)))
	r.Method(http.MethodPost, "/v2/auth/refresh", authHandler(deps, http.HandlerFunc(c.Refresh.Refresh)))
}

// authHandler builds the middleware chain for the public auth endpoints.
// Token responses must never land in a shared cache, hence WithNoStore.
func authHandler(deps Deps, handler http.Handler) http.Handler {
	chain := []mw.Middleware{
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithNoStore(),
	}

	if deps.Metrics != nil {
		chain = append(chain, deps.Metrics)
	}

	// Logging last so it sees the final status.
	chain = append(chain, mw.WithLogging())

	return mw.Chain(handler, chain...)
}
