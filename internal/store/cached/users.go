// Package cached decorates the user repository with a read-through
// email-lookup cache. Only the login path should use it: register wires the
// undecorated repository so the uniqueness check always hits the database.
package cached

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dropDatabas3/littlejohn/internal/cache"
	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
)

const keyPrefix = "user:email:"

// Users wraps a UserRepository with an email-keyed cache.
type Users struct {
	inner repository.UserRepository
	cache cache.Cache
	ttl   time.Duration
}

// New builds the decorator. A nil cache degrades to a passthrough.
func New(inner repository.UserRepository, c cache.Cache, ttl time.Duration) *Users {
	if c == nil {
		c = cache.Nop{}
	}
	return &Users{inner: inner, cache: c, ttl: ttl}
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	if b, ok := u.cache.Get(keyPrefix + email); ok {
		var usr repository.User
		if err := json.Unmarshal(b, &usr); err == nil {
			return &usr, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		u.cache.Delete(keyPrefix + email)
	}

	usr, err := u.inner.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(usr); err == nil {
		u.cache.Set(keyPrefix+usr.Email, b, u.ttl)
	}
	return usr, nil
}

func (u *Users) GetByID(ctx context.Context, id string) (*repository.User, error) {
	return u.inner.GetByID(ctx, id)
}

func (u *Users) Create(ctx context.Context, input repository.CreateUserInput) (*repository.User, error) {
	usr, err := u.inner.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	// Invalidate in case a stale miss was cached for this email.
	u.cache.Delete(keyPrefix + usr.Email)
	return usr, nil
}
