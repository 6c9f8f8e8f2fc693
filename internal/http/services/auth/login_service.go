package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	jwtx "github.com/dropDatabas3/littlejohn/internal/jwt"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
)

// LoginDeps contains dependencies for the login service.
type LoginDeps struct {
	Tokens repository.TokenRepository
	Issuer *jwtx.Issuer
}

type loginService struct {
	deps LoginDeps
}

// NewLoginService creates a new login service.
func NewLoginService(deps LoginDeps) LoginService {
	return &loginService{deps: deps}
}

func (s *loginService) Login(ctx context.Context, user repository.SafeUser, ip, userAgent string) (*dto.LoginResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("Login"),
		logger.UserID(user.ID),
	)

	accessToken, accessExp, err := s.deps.Issuer.AccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error("failed to sign access token", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrTokenIssueFailed, err)
	}

	refreshToken, refreshExp, err := s.deps.Issuer.RefreshToken(user.ID, user.Email)
	if err != nil {
		log.Error("failed to sign refresh token", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrTokenIssueFailed, err)
	}

	// The refresh token must be durable before any token reaches the caller.
	// A persist failure aborts the whole login.
	_, err = s.deps.Tokens.Create(ctx, repository.CreateRefreshTokenInput{
		UserID:    user.ID,
		Token:     refreshToken,
		IPAddress: ip,
		UserAgent: userAgent,
		ExpiresAt: refreshExp,
	})
	if err != nil {
		log.Error("failed to persist refresh token", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	log.Info("login successful")

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(time.Until(accessExp).Seconds()),
		User:         user,
	}, nil
}
