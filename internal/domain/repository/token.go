package repository

import (
	"context"
	"time"
)

// RefreshToken is a persisted refresh token. The signed token string itself is
// the lookup key. IPAddress and UserAgent are opaque audit metadata captured
// at issuance; they are stored, never interpreted.
type RefreshToken struct {
	ID        string
	Token     string
	UserID    string
	IPAddress string
	UserAgent string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Revoked   bool

	// User is the owning user, resolved eagerly by GetByToken so the caller
	// needs no second round trip.
	User *User
}

// CreateRefreshTokenInput holds the data to persist a refresh token.
type CreateRefreshTokenInput struct {
	UserID    string
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
}

// TokenRepository defines refresh-token operations.
type TokenRepository interface {
	// Create persists a new token with revoked=false. The write is atomic: on
	// error no partial record exists and no token is returned.
	Create(ctx context.Context, input CreateRefreshTokenInput) (*RefreshToken, error)

	// GetByToken looks a token up by its exact signed string, resolving the
	// owning user. Returns ErrNotFound if no record exists.
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)

	// Revoke flips the revoked flag (one-way). Operational hook only; no HTTP
	// endpoint exposes it.
	Revoke(ctx context.Context, token string) error
}
