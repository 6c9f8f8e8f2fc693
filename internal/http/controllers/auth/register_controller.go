package auth

import (
	"encoding/json"
	"io"
	"net/http"

	httpx "github.com/dropDatabas3/littlejohn/internal/http"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/littlejohn/internal/http/errors"
	svc "github.com/dropDatabas3/littlejohn/internal/http/services/auth"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
)

const maxRegisterBodySize = 64 * 1024 // 64KB

// RegisterController handles POST /v2/auth/register.
type RegisterController struct {
	service svc.RegisterService
}

// NewRegisterController creates a new register controller.
func NewRegisterController(service svc.RegisterService) *RegisterController {
	return &RegisterController{service: service}
}

// Register handles user registration.
func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RegisterController.Register"))

	r.Body = http.MaxBytesReader(w, r.Body, maxRegisterBodySize)
	defer r.Body.Close()

	var req dto.RegisterRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}
	// Reject trailing garbage after the JSON object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	result, err := c.service.Register(ctx, req)
	if err != nil {
		log.Debug("register failed", logger.Err(err))
		httpx.RecordAuthAttempt("register", "failure")
		httperrors.WriteError(w, mapServiceError(err))
		return
	}

	httpx.RecordAuthAttempt("register", "success")
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}
