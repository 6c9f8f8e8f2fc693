package jwt

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer(t *testing.T) *Issuer {
	t.Helper()
	iss, err := NewIssuer("littlejohn-test", "unit-test-secret", 15*time.Minute)
	require.NoError(t, err)
	return iss
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("littlejohn-test", "", time.Minute)
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestAccessTokenClaims(t *testing.T) {
	iss := testIssuer(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return fixed }

	signed, exp, err := iss.AccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(15*time.Minute), exp)

	// Verify against real clock would fail with a 2025 exp; decode unverified.
	claims := decodeUnverified(t, signed)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, "littlejohn-test", claims["iss"])
	assert.Nil(t, claims["type"])
	assert.EqualValues(t, fixed.Unix(), claims["iat"])
	assert.EqualValues(t, exp.Unix(), claims["exp"])
}

func TestRefreshTokenClaimsAndTTL(t *testing.T) {
	iss := testIssuer(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return fixed }

	signed, exp, err := iss.RefreshToken("user-1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(RefreshTTL), exp)
	assert.Equal(t, 7*24*time.Hour, RefreshTTL)

	claims := decodeUnverified(t, signed)
	assert.Equal(t, TokenUseRefresh, claims["type"])
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Nil(t, claims["role"])
}

func TestParseRoundtrip(t *testing.T) {
	iss := testIssuer(t)

	signed, _, err := iss.AccessToken("user-1", "a@x.com", "admin")
	require.NoError(t, err)

	claims, err := iss.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestParseRejectsForeignSignature(t *testing.T) {
	iss := testIssuer(t)
	other, err := NewIssuer("littlejohn-test", "a-different-secret", 15*time.Minute)
	require.NoError(t, err)

	signed, _, err := other.AccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)

	_, err = iss.Parse(signed)
	require.Error(t, err)
}

func TestParseRejectsWrongAlg(t *testing.T) {
	iss := testIssuer(t)

	// alg=none token
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, jwtv5.MapClaims{"sub": "user-1"})
	signed, err := tk.SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = iss.Parse(signed)
	require.Error(t, err)
}

func decodeUnverified(t *testing.T, token string) jwtv5.MapClaims {
	t.Helper()
	claims := jwtv5.MapClaims{}
	_, _, err := jwtv5.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	return claims
}
