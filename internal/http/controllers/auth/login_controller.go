package auth

import (
	"encoding/json"
	"net/http"

	httpx "github.com/dropDatabas3/littlejohn/internal/http"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/littlejohn/internal/http/errors"
	"github.com/dropDatabas3/littlejohn/internal/http/middlewares"
	svc "github.com/dropDatabas3/littlejohn/internal/http/services/auth"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
)

const maxLoginBodySize = 64 * 1024 // 64KB

// LoginController handles POST /v2/auth/login.
type LoginController struct {
	credentials svc.CredentialsService
	login       svc.LoginService
}

// NewLoginController creates a new login controller.
func NewLoginController(credentials svc.CredentialsService, login svc.LoginService) *LoginController {
	return &LoginController{credentials: credentials, login: login}
}

// Login validates credentials and issues the token pair. The client IP and
// User-Agent travel with the refresh token for audit only.
func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBodySize)
	defer r.Body.Close()

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	user, err := c.credentials.Validate(ctx, req.Email, req.Password)
	if err != nil {
		log.Debug("credential validation failed", logger.Err(err))
		httpx.RecordAuthAttempt("login", "failure")
		httperrors.WriteError(w, mapServiceError(err))
		return
	}

	result, err := c.login.Login(ctx, *user, middlewares.ClientIP(r), r.UserAgent())
	if err != nil {
		log.Debug("login failed", logger.Err(err))
		httpx.RecordAuthAttempt("login", "failure")
		httperrors.WriteError(w, mapServiceError(err))
		return
	}

	httpx.RecordAuthAttempt("login", "success")
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}
