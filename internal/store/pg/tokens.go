package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
)

type tokenRepo struct{ pool *pgxpool.Pool }

func (r *tokenRepo) Create(ctx context.Context, input repository.CreateRefreshTokenInput) (*repository.RefreshToken, error) {
	// Single INSERT: the record exists fully or not at all.
	const query = `
		INSERT INTO refresh_token (id, token, user_id, ip_address, user_agent, issued_at, expires_at, revoked)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6, FALSE)
		RETURNING id, token, user_id, ip_address, user_agent, issued_at, expires_at, revoked
	`
	var rt repository.RefreshToken
	err := r.pool.QueryRow(ctx, query,
		uuid.NewString(), input.Token, input.UserID, input.IPAddress, input.UserAgent, input.ExpiresAt,
	).Scan(&rt.ID, &rt.Token, &rt.UserID, &rt.IPAddress, &rt.UserAgent, &rt.IssuedAt, &rt.ExpiresAt, &rt.Revoked)
	if err != nil {
		return nil, fmt.Errorf("pg: create refresh token: %w", err)
	}
	return &rt, nil
}

func (r *tokenRepo) GetByToken(ctx context.Context, token string) (*repository.RefreshToken, error) {
	// Join resolves the owning user in the same round trip.
	const query = `
		SELECT t.id, t.token, t.user_id, t.ip_address, t.user_agent, t.issued_at, t.expires_at, t.revoked,
		       u.id, u.email, u.name, u.password_hash, u.role, u.created_at
		FROM refresh_token t
		JOIN app_user u ON u.id = t.user_id
		WHERE t.token = $1
	`
	var rt repository.RefreshToken
	var u repository.User
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.Token, &rt.UserID, &rt.IPAddress, &rt.UserAgent, &rt.IssuedAt, &rt.ExpiresAt, &rt.Revoked,
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pg: get refresh token: %w", err)
	}
	rt.User = &u
	return &rt, nil
}

func (r *tokenRepo) Revoke(ctx context.Context, token string) error {
	// One-way flag; re-revoking is a no-op.
	const query = `UPDATE refresh_token SET revoked = TRUE WHERE token = $1`
	tag, err := r.pool.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("pg: revoke refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
