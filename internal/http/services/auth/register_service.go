package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
	"github.com/dropDatabas3/littlejohn/internal/security/password"
)

// RegisterDeps contains dependencies for the register service.
type RegisterDeps struct {
	// Users must be the undecorated repository: the uniqueness check has to
	// hit the database, never a cache.
	Users repository.UserRepository
}

type registerService struct {
	deps RegisterDeps
}

// NewRegisterService creates a new register service.
func NewRegisterService(deps RegisterDeps) RegisterService {
	return &registerService{deps: deps}
}

func (s *registerService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.register"),
		logger.Op("Register"),
	)

	in.Name = strings.TrimSpace(in.Name)
	if in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	// Check-then-create. Not atomic; the unique index on email is the
	// backstop and its violation maps to the same outcome below.
	_, err := s.deps.Users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		log.Debug("email already registered")
		return nil, ErrEmailTaken
	case !repository.IsNotFound(err):
		log.Error("user lookup failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		log.Error("password hash failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrHashFailed, err)
	}

	user, err := s.deps.Users.Create(ctx, repository.CreateUserInput{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		Role:         repository.RoleUser,
	})
	if err != nil {
		if repository.IsConflict(err) {
			// Lost the race against a concurrent registration.
			log.Debug("email taken on insert")
			return nil, ErrEmailTaken
		}
		log.Error("user create failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	log.Info("user registered", logger.UserID(user.ID))

	return &dto.RegisterResponse{User: user.Safe()}, nil
}
