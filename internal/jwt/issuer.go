// Package jwt signs and parses the access and refresh tokens of the auth core.
package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// RefreshTTL is the lifetime of a refresh token. Deliberately a constant,
// independent of the configured access-token TTL.
const RefreshTTL = 7 * 24 * time.Hour

// TokenUseRefresh is the value of the "type" claim on refresh tokens, so a
// refresh token submitted where an access token is expected is structurally
// detectable by claim inspection.
const TokenUseRefresh = "refresh"

// ErrNoSecret indicates a missing signing secret. Fatal at startup; the
// process must not serve requests without one.
var ErrNoSecret = errors.New("jwt: signing secret not configured")

// Issuer signs tokens with a process-wide HMAC secret loaded once at startup.
type Issuer struct {
	Iss       string
	AccessTTL time.Duration

	secret []byte
	now    func() time.Time
}

// NewIssuer builds an Issuer. Returns ErrNoSecret on an empty secret; callers
// treat that as a startup failure, never a per-request one.
func NewIssuer(iss, secret string, accessTTL time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &Issuer{
		Iss:       iss,
		AccessTTL: accessTTL,
		secret:    []byte(secret),
		now:       time.Now,
	}, nil
}

// AccessToken signs an access token with claims {sub, email, role}.
func (i *Issuer) AccessToken(userID, email, role string) (string, time.Time, error) {
	now := i.now().UTC()
	exp := now.Add(i.AccessTTL)

	claims := jwtv5.MapClaims{
		"iss":   i.Iss,
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	signed, err := i.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// RefreshToken signs a refresh token with claims {sub, email, type:"refresh"}
// and the fixed RefreshTTL. Returns the token and its expiry so the caller
// can persist them together.
func (i *Issuer) RefreshToken(userID, email string) (string, time.Time, error) {
	now := i.now().UTC()
	exp := now.Add(RefreshTTL)

	claims := jwtv5.MapClaims{
		"iss":   i.Iss,
		"sub":   userID,
		"email": email,
		"type":  TokenUseRefresh,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	signed, err := i.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies the signature and standard validity of a token issued by
// this Issuer and returns its claims.
func (i *Issuer) Parse(token string) (jwtv5.MapClaims, error) {
	tk, err := jwtv5.Parse(token, func(t *jwtv5.Token) (any, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tk.Claims.(jwtv5.MapClaims)
	if !ok || !tk.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

func (i *Issuer) sign(claims jwtv5.MapClaims) (string, error) {
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tk.Header["typ"] = "JWT"
	signed, err := tk.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
