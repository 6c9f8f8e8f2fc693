package auth

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
	"github.com/dropDatabas3/littlejohn/internal/security/password"
)

// CredentialsDeps contains dependencies for the credentials service.
type CredentialsDeps struct {
	// Users may be the cache-decorated repository; the register flow wires
	// the raw one separately.
	Users repository.UserRepository
}

type credentialsService struct {
	deps CredentialsDeps
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(deps CredentialsDeps) CredentialsService {
	return &credentialsService{deps: deps}
}

func (s *credentialsService) Validate(ctx context.Context, email, plaintext string) (*repository.SafeUser, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.credentials"),
		logger.Op("Validate"),
	)

	if email == "" || plaintext == "" {
		return nil, ErrMissingFields
	}

	// Exact email match; emails are case-sensitive as stored.
	user, err := s.deps.Users.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			log.Debug("user not found")
			return nil, ErrInvalidCredentials
		}
		log.Error("user lookup failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		log.Debug("password check failed", logger.UserID(user.ID))
		return nil, ErrInvalidCredentials
	}

	safe := user.Safe()
	return &safe, nil
}
