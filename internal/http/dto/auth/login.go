package auth

import "github.com/dropDatabas3/littlejohn/internal/domain/repository"

// LoginRequest is the body of POST /v2/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the token pair plus the password-free user projection.
type LoginResponse struct {
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
	TokenType    string              `json:"tokenType"`
	ExpiresIn    int64               `json:"expiresIn"`
	User         repository.SafeUser `json:"user"`
}
