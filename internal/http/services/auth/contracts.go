// Package auth implements the authentication flows: credential validation,
// register, login, and refresh. Controllers stay thin; every rule lives here.
//
// Failure contract: any credential or token problem surfaces as one of the
// ErrInvalid*/ErrEmailTaken sentinels, all of which controllers collapse into
// a single uniform unauthorized response. Store failures keep their own
// sentinels and map to 5xx; they are never conflated with unauthorized.
package auth

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
)

// CredentialsService validates an email/password pair.
type CredentialsService interface {
	// Validate returns the password-stripped user on success. Unknown email
	// and wrong password produce the same ErrInvalidCredentials: callers must
	// not be able to tell which factor failed.
	Validate(ctx context.Context, email, plaintext string) (*repository.SafeUser, error)
}

// RegisterService creates new users. No tokens are issued on registration;
// the client logs in separately.
type RegisterService interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error)
}

// LoginService issues the token pair for an already-validated user.
type LoginService interface {
	// Login trusts its caller to have run CredentialsService first; it does
	// not re-verify the password. ip and userAgent are stored with the
	// refresh token for audit.
	Login(ctx context.Context, user repository.SafeUser, ip, userAgent string) (*dto.LoginResponse, error)
}

// RefreshService exchanges a valid refresh token for a new access token.
type RefreshService interface {
	Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.RefreshResponse, error)
}

// Sentinel errors shared across the auth services.
var (
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials")
	ErrEmailTaken          = fmt.Errorf("email already registered")
	ErrInvalidRefreshToken = fmt.Errorf("invalid or expired refresh token")
	ErrHashFailed          = fmt.Errorf("password hashing failed")
	ErrTokenIssueFailed    = fmt.Errorf("failed to issue tokens")
	ErrStoreFailed         = fmt.Errorf("store operation failed")
)
