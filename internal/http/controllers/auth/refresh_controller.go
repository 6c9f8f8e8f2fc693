package auth

import (
	"encoding/json"
	"net/http"

	httpx "github.com/dropDatabas3/littlejohn/internal/http"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/littlejohn/internal/http/errors"
	svc "github.com/dropDatabas3/littlejohn/internal/http/services/auth"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
)

const maxRefreshBodySize = 8 * 1024 // 8KB

// RefreshController handles POST /v2/auth/refresh.
type RefreshController struct {
	service svc.RefreshService
}

// NewRefreshController creates a new refresh controller.
func NewRefreshController(service svc.RefreshService) *RefreshController {
	return &RefreshController{service: service}
}

// Refresh exchanges a refresh token for a new access token.
func (c *RefreshController) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RefreshController.Refresh"))

	r.Body = http.MaxBytesReader(w, r.Body, maxRefreshBodySize)
	defer r.Body.Close()

	var req dto.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	result, err := c.service.Refresh(ctx, req)
	if err != nil {
		log.Debug("refresh failed", logger.Err(err))
		httpx.RecordAuthAttempt("refresh", "failure")
		httperrors.WriteError(w, mapServiceError(err))
		return
	}

	httpx.RecordAuthAttempt("refresh", "success")
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}
