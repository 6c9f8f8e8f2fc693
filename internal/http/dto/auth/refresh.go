package auth

// RefreshRequest is the body of POST /v2/auth/refresh.
type RefreshRequest struct {
	Token string `json:"token"`
}

// RefreshResponse carries the new access token only. The refresh token is not
// rotated; the submitted one remains valid until expiry or revocation.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}
