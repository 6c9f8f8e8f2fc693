// Package auth contains the request/response DTOs of the auth endpoints.
package auth

import "github.com/dropDatabas3/littlejohn/internal/domain/repository"

// RegisterRequest is the body of POST /v2/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse returns the created user. Never carries a password field.
type RegisterResponse struct {
	User repository.SafeUser `json:"user"`
}
