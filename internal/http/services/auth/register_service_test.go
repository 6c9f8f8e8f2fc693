package auth

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
	dto "github.com/dropDatabas3/littlejohn/internal/http/dto/auth"
	"github.com/dropDatabas3/littlejohn/internal/security/password"
)

func TestRegister_Success(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewRegisterService(RegisterDeps{Users: users})

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "  Grace  ",
		Email:    "grace@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "grace@example.com", resp.User.Email)
	assert.Equal(t, "Grace", resp.User.Name)
	assert.Equal(t, repository.RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.User.ID)

	// The stored hash must verify against the plaintext and never equal it.
	stored := users.byEmail["grace@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.True(t, password.Verify("hunter2hunter2", stored.PasswordHash))
}

func TestRegister_ResponseCarriesNoPasswordMaterial(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewRegisterService(RegisterDeps{Users: users})

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "grace@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), users.byEmail["grace@example.com"].PasswordHash)
}

func TestRegister_DuplicateEmailNeverReachesCreate(t *testing.T) {
	users := newFakeUserRepo(seedUser(t, "ada@example.com", "s3cret-pw"))
	svc := NewRegisterService(RegisterDeps{Users: users})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ada@example.com",
		Password: "another-pw",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Zero(t, users.createCalls)
}

func TestRegister_InsertConflictMapsToEmailTaken(t *testing.T) {
	// Simulates losing the race: the pre-check misses but the insert hits
	// the unique index.
	users := newFakeUserRepo()
	users.createErr = repository.ErrConflict
	svc := NewRegisterService(RegisterDeps{Users: users})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "grace@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewRegisterService(RegisterDeps{Users: newFakeUserRepo()})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Password: "pw"})
	assert.ErrorIs(t, err, ErrMissingFields)
}
