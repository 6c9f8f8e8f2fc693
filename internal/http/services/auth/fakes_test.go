package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	jwtx "github.com/dropDatabas3/littlejohn/internal/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*repository.User

	getErr      error
	createErr   error
	createCalls int
}

func newFakeUserRepo(users ...*repository.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: make(map[string]*repository.User)}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*repository.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*repository.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, in repository.CreateUserInput) (*repository.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[in.Email]; ok {
		return nil, repository.ErrConflict
	}
	u := &repository.User{
		ID:           fmt.Sprintf("user-%d", len(f.byEmail)+1),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: in.PasswordHash,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	f.byEmail[in.Email] = u
	return u, nil
}

type fakeTokenRepo struct {
	byToken map[string]*repository.RefreshToken

	createErr   error
	creates     []repository.CreateRefreshTokenInput
	revokeCalls int
}

func newFakeTokenRepo(tokens ...*repository.RefreshToken) *fakeTokenRepo {
	f := &fakeTokenRepo{byToken: make(map[string]*repository.RefreshToken)}
	for _, t := range tokens {
		f.byToken[t.Token] = t
	}
	return f
}

func (f *fakeTokenRepo) Create(_ context.Context, in repository.CreateRefreshTokenInput) (*repository.RefreshToken, error) {
	f.creates = append(f.creates, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	rt := &repository.RefreshToken{
		ID:        fmt.Sprintf("rt-%d", len(f.byToken)+1),
		Token:     in.Token,
		UserID:    in.UserID,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
		IssuedAt:  time.Now(),
		ExpiresAt: in.ExpiresAt,
	}
	f.byToken[in.Token] = rt
	return rt, nil
}

func (f *fakeTokenRepo) GetByToken(_ context.Context, token string) (*repository.RefreshToken, error) {
	rt, ok := f.byToken[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *rt
	return &cp, nil
}

func (f *fakeTokenRepo) Revoke(_ context.Context, token string) error {
	f.revokeCalls++
	rt, ok := f.byToken[token]
	if !ok {
		return repository.ErrNotFound
	}
	rt.Revoked = true
	return nil
}

func newTestIssuer(t *testing.T) *jwtx.Issuer {
	t.Helper()
	iss, err := jwtx.NewIssuer("littlejohn-test", "test-secret-0123456789", time.Minute)
	require.NoError(t, err)
	return iss
}
