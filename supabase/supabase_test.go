package supabase

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDFromRequest(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret")

	token, err := GenerateTestJWT("user-123")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/nudge", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	userID, err := UserIDFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestUserIDFromRequestMissingHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/nudge", nil)
	_, err := UserIDFromRequest(r)
	assert.Error(t, err)
}

func TestUserIDFromRequestGarbageToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/nudge", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")
	_, err := UserIDFromRequest(r)
	assert.Error(t, err)
}
