package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	jwtx "github.com/dropDatabas3/littlejohn/internal/jwt"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
)

// RefreshDeps contains dependencies for the refresh service.
type RefreshDeps struct {
	Tokens repository.TokenRepository
	Issuer *jwtx.Issuer
}

type refreshService struct {
	deps RefreshDeps
	now  func() time.Time
}

// NewRefreshService creates a new refresh service.
func NewRefreshService(deps RefreshDeps) RefreshService {
	return &refreshService{deps: deps, now: time.Now}
}

// Refresh walks the token through its validity states, evaluated fresh on
// every call:
//
//	unknown  — no record with this token string      -> unauthorized
//	invalid  — revoked, or expiresAt strictly past   -> unauthorized
//	valid    — issue a new access token, no writes
//
// The refresh token is not rotated: the submitted one stays usable until its
// own expiry or an out-of-band revocation.
func (s *refreshService) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.refresh"),
		logger.Op("Refresh"),
	)

	in.Token = strings.TrimSpace(in.Token)
	if in.Token == "" {
		return nil, ErrMissingFields
	}

	rt, err := s.deps.Tokens.GetByToken(ctx, in.Token)
	if err != nil {
		if repository.IsNotFound(err) {
			log.Debug("refresh token not found")
			return nil, ErrInvalidRefreshToken
		}
		log.Error("refresh token lookup failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	now := s.now()
	if rt.Revoked || now.After(rt.ExpiresAt) {
		log.Debug("refresh token revoked or expired",
			logger.Bool("revoked", rt.Revoked),
			logger.UserID(rt.UserID),
		)
		return nil, ErrInvalidRefreshToken
	}

	user := rt.User
	if user == nil {
		log.Error("refresh token record missing user")
		return nil, fmt.Errorf("%w: token %s has no resolved user", ErrStoreFailed, rt.ID)
	}

	accessToken, accessExp, err := s.deps.Issuer.AccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error("failed to sign access token", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrTokenIssueFailed, err)
	}

	log.Info("refresh successful", logger.UserID(user.ID))

	return &dto.RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(accessExp).Seconds()),
	}, nil
}
