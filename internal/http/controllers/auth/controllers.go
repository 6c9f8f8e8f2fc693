// Package auth contains the HTTP controllers for the auth endpoints. They
// parse and validate transport concerns only; the rules live in the services.
package auth

import (
	"errors"

	httperrors "github.com/dropDatabas3/littlejohn/internal/http/errors"
	svc "github.com/dropDatabas3/littlejohn/internal/http/services/auth"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Controllers aggregates the auth controllers for wiring.
type Controllers struct {
	Register *RegisterController
	Login    *LoginController
	Refresh  *RefreshController
}

// NewControllers wires the controllers onto their services.
func NewControllers(creds svc.CredentialsService, register svc.RegisterService, login svc.LoginService, refresh svc.RefreshService) *Controllers {
	return &Controllers{
		Register: NewRegisterController(register),
		Login:    NewLoginController(creds, login),
		Refresh:  NewRefreshController(refresh),
	}
}

// mapServiceError maps service errors to HTTP responses. Every credential or
// token failure produces the exact same unauthorized body, hiding which
// factor failed; only malformed requests and store failures differ.
func mapServiceError(err error) *httperrors.AppError {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		return httperrors.ErrBadRequest.WithDetail("missing required fields")
	case errors.Is(err, svc.ErrInvalidCredentials),
		errors.Is(err, svc.ErrEmailTaken),
		errors.Is(err, svc.ErrInvalidRefreshToken):
		return httperrors.ErrUnauthorized
	case errors.Is(err, svc.ErrStoreFailed):
		return httperrors.ErrServiceUnavailable
	default:
		return httperrors.ErrInternalServerError
	}
}
