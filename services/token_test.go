package services

import (
	"strings"
	"testing"
	"time"

	"quicknotes/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{
		ID:        "3f1c2a8e-7a3b-4c55-9d2e-0a1b2c3d4e5f",
		FullName:  "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "salt$hash",
		CreatedOn: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret, time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenService("secret", 0)
	assert.Error(t, err)

	svc, err := NewTokenService("secret", 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, svc.TTL())
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "secret")
	user := testUser()

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotContains(t, token, user.Password)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Identity(), *identity)
}

func TestVerifyRejects(t *testing.T) {
	svc := newTestTokenService(t, "secret")
	user := testUser()

	valid, err := svc.Issue(user)
	require.NoError(t, err)

	otherKey := newTestTokenService(t, "another-secret")
	forged, err := otherKey.Issue(user)
	require.NoError(t, err)

	expiredSvc := newTestTokenService(t, "secret")
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Issue(user)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User: user.Identity(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		User: user.Identity(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		User: user.Identity(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrTokenMissing},
		{"garbage", "not-a-token", ErrTokenInvalid},
		{"wrong key", forged, ErrTokenInvalid},
		{"expired", expired, ErrTokenInvalid},
		{"missing user claim", noUser, ErrTokenInvalid},
		{"missing expiry", noExpiry, ErrTokenInvalid},
		{"alg none", unsigned, ErrTokenInvalid},
		{"other hmac alg", hs512, ErrTokenInvalid},
		{"tampered payload", tampered, ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, identity)
		})
	}
}

func TestVerifyReturnsIssuanceSnapshot(t *testing.T) {
	svc := newTestTokenService(t, "secret")
	user := testUser()

	token, err := svc.Issue(user)
	require.NoError(t, err)

	user.FullName = "Renamed"

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", identity.FullName)
}

func TestTokenExpiresAfterTTL(t *testing.T) {
	svc := newTestTokenService(t, "secret")
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
