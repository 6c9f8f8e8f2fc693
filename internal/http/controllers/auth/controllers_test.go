package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	svc "github.com/dropDatabas3/littlejohn/internal/http/services/auth"
)

type stubCredentials struct {
	user *repository.SafeUser
	err  error
}

func (s *stubCredentials) Validate(context.Context, string, string) (*repository.SafeUser, error) {
	return s.user, s.err
}

type stubRegister struct {
	resp *dto.RegisterResponse
	err  error
}

func (s *stubRegister) Register(context.Context, dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return s.resp, s.err
}

type stubLogin struct {
	resp *dto.LoginResponse
	err  error
}

func (s *stubLogin) Login(context.Context, repository.SafeUser, string, string) (*dto.LoginResponse, error) {
	return s.resp, s.err
}

type stubRefresh struct {
	resp *dto.RefreshResponse
	err  error
}

func (s *stubRefresh) Refresh(context.Context, dto.RefreshRequest) (*dto.RefreshResponse, error) {
	return s.resp, s.err
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// Every auth failure must produce a byte-identical unauthorized response so a
// caller cannot tell which factor failed, nor that an email is taken.
func TestAuthFailuresAreUniform(t *testing.T) {
	loginBadCreds := NewLoginController(&stubCredentials{err: svc.ErrInvalidCredentials}, &stubLogin{})
	registerTaken := NewRegisterController(&stubRegister{err: svc.ErrEmailTaken})
	refreshInvalid := NewRefreshController(&stubRefresh{err: svc.ErrInvalidRefreshToken})

	recLogin := postJSON(t, loginBadCreds.Login, `{"email":"a@b.c","password":"x"}`)
	recRegister := postJSON(t, registerTaken.Register, `{"email":"a@b.c","password":"x"}`)
	recRefresh := postJSON(t, refreshInvalid.Refresh, `{"token":"x"}`)

	for _, rec := range []*httptest.ResponseRecorder{recLogin, recRegister, recRefresh} {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	assert.Equal(t, recLogin.Body.String(), recRegister.Body.String())
	assert.Equal(t, recLogin.Body.String(), recRefresh.Body.String())
}

func TestStoreFailureIsNotUnauthorized(t *testing.T) {
	c := NewRefreshController(&stubRefresh{err: svc.ErrStoreFailed})
	rec := postJSON(t, c.Refresh, `{"token":"x"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	c := NewRefreshController(&stubRefresh{})
	rec := postJSON(t, c.Refresh, `{"token":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRejectsUnknownFields(t *testing.T) {
	c := NewRegisterController(&stubRegister{resp: &dto.RegisterResponse{}})
	rec := postJSON(t, c.Register, `{"email":"a@b.c","password":"x","admin":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSuccessBodyHasNoPasswordMaterial(t *testing.T) {
	user := repository.SafeUser{ID: "user-1", Email: "a@b.c", Role: repository.RoleUser}
	c := NewLoginController(
		&stubCredentials{user: &user},
		&stubLogin{resp: &dto.LoginResponse{
			AccessToken:  "acc",
			RefreshToken: "ref",
			TokenType:    "Bearer",
			ExpiresIn:    900,
			User:         user,
		}},
	)

	rec := postJSON(t, c.Login, `{"email":"a@b.c","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), `"accessToken":"acc"`)
	assert.Contains(t, rec.Body.String(), `"user"`)
}
