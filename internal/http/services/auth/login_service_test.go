package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	jwtx "github.com/dropDatabas3/littlejohn/internal/jwt"
)

var testUser = repository.SafeUser{
	ID:    "user-1",
	Email: "ada@example.com",
	Name:  "Ada",
	Role:  repository.RoleUser,
}

func TestLogin_IssuesPairAndPersistsRefreshToken(t *testing.T) {
	tokens := newFakeTokenRepo()
	issuer := newTestIssuer(t)
	svc := NewLoginService(LoginDeps{Tokens: tokens, Issuer: issuer})

	resp, err := svc.Login(context.Background(), testUser, "203.0.113.9", "curl/8.0")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.ExpiresIn, int64(0))
	assert.Equal(t, testUser, resp.User)

	require.Len(t, tokens.creates, 1)
	created := tokens.creates[0]
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, resp.RefreshToken, created.Token)
	assert.Equal(t, "203.0.113.9", created.IPAddress)
	assert.Equal(t, "curl/8.0", created.UserAgent)
	assert.WithinDuration(t, time.Now().Add(jwtx.RefreshTTL), created.ExpiresAt, 5*time.Second)
}

func TestLogin_TokensCarryTheUserSubject(t *testing.T) {
	tokens := newFakeTokenRepo()
	issuer := newTestIssuer(t)
	svc := NewLoginService(LoginDeps{Tokens: tokens, Issuer: issuer})

	resp, err := svc.Login(context.Background(), testUser, "", "")
	require.NoError(t, err)

	access, err := issuer.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", access["sub"])
	assert.Equal(t, "ada@example.com", access["email"])
	assert.Equal(t, repository.RoleUser, access["role"])

	refresh, err := issuer.Parse(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refresh["sub"])
	assert.Equal(t, jwtx.TokenUseRefresh, refresh["type"])
}

func TestLogin_PersistFailureAbortsLogin(t *testing.T) {
	tokens := newFakeTokenRepo()
	tokens.createErr = errors.New("disk full")
	svc := NewLoginService(LoginDeps{Tokens: tokens, Issuer: newTestIssuer(t)})

	resp, err := svc.Login(context.Background(), testUser, "", "")
	require.ErrorIs(t, err, ErrStoreFailed)
	assert.Nil(t, resp)
}
