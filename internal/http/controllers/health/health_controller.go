// Package health contains the controller for readiness checks.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/health"
	httperrors "github.com/dropDatabas3/littlejohn/internal/http/errors"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
)

const checkTimeout = 2 * time.Second

// Pinger reports whether a backing component is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check names a component to probe. Required components take the service to
// unavailable when they fail; optional ones only degrade it.
type Check struct {
	Name     string
	Pinger   Pinger
	Required bool
}

// HealthController handles GET /readyz.
type HealthController struct {
	version string
	checks  []Check
}

// NewHealthController creates a new health controller.
func NewHealthController(version string, checks ...Check) *HealthController {
	return &HealthController{version: version, checks: checks}
}

// Readyz probes every registered component and reports aggregate readiness.
func (c *HealthController) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("HealthController.Readyz"))

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	response := dto.HealthResponse{
		Status:     "ready",
		Version:    c.version,
		Components: make(map[string]string, len(c.checks)),
	}

	for _, check := range c.checks {
		pingCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := check.Pinger.Ping(pingCtx)
		cancel()

		if err != nil {
			response.Components[check.Name] = "down"
			if check.Required {
				response.Status = "unavailable"
			} else if response.Status == "ready" {
				response.Status = "degraded"
			}
			log.Warn("component check failed",
				logger.String("component", check.Name),
				logger.Err(err),
			)
			continue
		}
		response.Components[check.Name] = "up"
	}

	statusCode := http.StatusOK
	if response.Status == "unavailable" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}
