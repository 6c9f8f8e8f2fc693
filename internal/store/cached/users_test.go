package cached

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/littlejohn/internal/cache/memory"
	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
)

type countingRepo struct {
	user     *repository.User
	getCalls int
}

func (c *countingRepo) GetByEmail(_ context.Context, email string) (*repository.User, error) {
	c.getCalls++
	if c.user != nil && c.user.Email == email {
		cp := *c.user
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (c *countingRepo) GetByID(_ context.Context, id string) (*repository.User, error) {
	if c.user != nil && c.user.ID == id {
		cp := *c.user
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (c *countingRepo) Create(_ context.Context, in repository.CreateUserInput) (*repository.User, error) {
	c.user = &repository.User{ID: "user-1", Email: in.Email, PasswordHash: in.PasswordHash, Role: in.Role}
	cp := *c.user
	return &cp, nil
}

func TestGetByEmail_SecondLookupHitsCache(t *testing.T) {
	inner := &countingRepo{user: &repository.User{ID: "user-1", Email: "ada@example.com"}}
	users := New(inner, memory.New(time.Minute), time.Minute)

	ctx := context.Background()
	first, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)

	second, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.getCalls)
}

func TestGetByEmail_MissIsNotCached(t *testing.T) {
	inner := &countingRepo{}
	users := New(inner, memory.New(time.Minute), time.Minute)

	ctx := context.Background()
	_, err := users.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 2, inner.getCalls)
}

func TestGetByEmail_CorruptEntryFallsThrough(t *testing.T) {
	inner := &countingRepo{user: &repository.User{ID: "user-1", Email: "ada@example.com"}}
	c := memory.New(time.Minute)
	users := New(inner, c, time.Minute)

	c.Set("user:email:ada@example.com", []byte("{not json"), time.Minute)

	got, err := users.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, 1, inner.getCalls)
}

func TestCreate_InvalidatesCachedEmail(t *testing.T) {
	inner := &countingRepo{}
	c := memory.New(time.Minute)
	users := New(inner, c, time.Minute)

	// Pre-poison with a record that should disappear after Create.
	c.Set("user:email:new@example.com", []byte(`{"ID":"stale"}`), time.Minute)

	_, err := users.Create(context.Background(), repository.CreateUserInput{Email: "new@example.com"})
	require.NoError(t, err)

	_, ok := c.Get("user:email:new@example.com")
	assert.False(t, ok)
}

func TestNilCacheDegradesToPassthrough(t *testing.T) {
	inner := &countingRepo{user: &repository.User{ID: "user-1", Email: "ada@example.com"}}
	users := New(inner, nil, time.Minute)

	_, err := users.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	_, err = users.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.getCalls)
}
