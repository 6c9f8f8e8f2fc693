package repository

import (
	"context"
	"time"
)

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a full user record including the password hash. It must never cross
// the HTTP boundary; build a SafeUser projection instead.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// SafeUser is the password-free projection handed to callers outside the
// trust boundary. Constructed explicitly, field by field, so the hash cannot
// leak through struct copying.
type SafeUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

// Safe returns the password-free projection of u.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// CreateUserInput holds the data to create a user. PasswordHash must already
// be hashed; repositories never see a plaintext password.
type CreateUserInput struct {
	Email        string
	Name         string
	PasswordHash string
	Role         string
}

// UserRepository defines user operations as exercised by the auth flows.
type UserRepository interface {
	// GetByEmail looks up a user by exact email match.
	// Returns ErrNotFound if no user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID looks up a user by ID.
	// Returns ErrNotFound if no user exists.
	GetByID(ctx context.Context, id string) (*User, error)

	// Create inserts a new user.
	// Returns ErrConflict when the email is already taken.
	Create(ctx context.Context, input CreateUserInput) (*User, error)
}
