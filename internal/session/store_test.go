package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayursutra-server/internal/config"
)

func testConfig(mockAuth bool) *config.Config {
	return &config.Config{
		MockAuth:                 mockAuth,
		LoginDelay:               0,
		JWTSecret:                "test-secret",
		SessionExpirationMinutes: 60,
	}
}

func TestLoginSynthesizesIdentity(t *testing.T) {
	store := NewStore(testConfig(true))

	ident, token, err := store.Login("priya@example.com", "whatever", RolePatient)
	require.NoError(t, err)
	require.NotNil(t, ident)
	require.NotEmpty(t, token)

	assert.Equal(t, "priya@example.com", ident.Email)
	assert.Equal(t, "priya", ident.DisplayName)
	assert.Equal(t, RolePatient, ident.Role)
	assert.NotEmpty(t, ident.ID)
	assert.False(t, ident.CreatedAt.IsZero())

	got := store.CurrentIdentity(token)
	require.NotNil(t, got)
	assert.Equal(t, ident.ID, got.ID)
}

func TestRegisterUsesSuppliedName(t *testing.T) {
	store := NewStore(testConfig(true))

	ident, _, err := store.Register("dr.sharma@example.com", "password123", "Dr. Maya Sharma", RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Maya Sharma", ident.DisplayName)
	assert.Equal(t, RoleDoctor, ident.Role)
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := NewStore(testConfig(true))

	_, token, err := store.Login("a@b.com", "pw", RoleTherapist)
	require.NoError(t, err)

	store.Logout(token)
	assert.Nil(t, store.CurrentIdentity(token))

	// Second logout with the same token must be a quiet no-op.
	store.Logout(token)
	assert.Nil(t, store.CurrentIdentity(token))

	// Garbage tokens are also a no-op.
	store.Logout("not-a-token")
}

func TestCurrentIdentityRejectsForgedToken(t *testing.T) {
	store := NewStore(testConfig(true))
	assert.Nil(t, store.CurrentIdentity("forged"))
	assert.Nil(t, store.CurrentIdentity(""))
}

func TestRealAuthRejectsUnknownUser(t *testing.T) {
	store := NewStore(testConfig(false))

	_, _, err := store.Login("nobody@example.com", "pw", RolePatient)
	assert.ErrorIs(t, err, ErrAuthFailure)
}

func TestRealAuthChecksPassword(t *testing.T) {
	store := NewStore(testConfig(false))

	_, regToken, err := store.Register("raj@example.com", "correct-horse", "Raj Patel", RolePatient)
	require.NoError(t, err)

	// A failed login leaves the prior session untouched.
	_, _, err = store.Login("raj@example.com", "wrong", RolePatient)
	assert.ErrorIs(t, err, ErrAuthFailure)
	require.NotNil(t, store.CurrentIdentity(regToken))

	// Registered role wins over whatever the login form claims.
	ident, _, err := store.Login("raj@example.com", "correct-horse", RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, RolePatient, ident.Role)
	assert.Equal(t, "Raj Patel", ident.DisplayName)
}

func TestRealAuthRejectsDuplicateRegistration(t *testing.T) {
	store := NewStore(testConfig(false))

	_, _, err := store.Register("anita@example.com", "password123", "Anita Kumar", RolePatient)
	require.NoError(t, err)

	_, _, err = store.Register("anita@example.com", "password456", "Someone Else", RoleDoctor)
	assert.ErrorIs(t, err, ErrAuthFailure)
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"doctor", "patient", "therapist"} {
		role, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), role)
	}
	_, err := ParseRole("admin")
	assert.Error(t, err)
}
