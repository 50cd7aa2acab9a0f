package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wastedesk/internal/api"
	"wastedesk/internal/credstore"
	"wastedesk/internal/models"
)

func mintToken(t *testing.T, sub string, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "role": role, "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// newTestService wires a real API client against an httptest server so the
// whole login path, token endpoint to credential file, is exercised.
func newTestService(t *testing.T, handler http.Handler) (Service, *credstore.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	creds := credstore.NewStore(filepath.Join(t.TempDir(), "token"))
	client := api.NewClient(server.URL, 5*time.Second, creds, zap.NewNop())
	return NewService(client, creds, nil, zap.NewNop()), creds
}

func TestServiceLogin(t *testing.T) {
	t.Run("issued token is persisted", func(t *testing.T) {
		issued := mintToken(t, "42", "admin", time.Now().Add(time.Hour))
		svc, creds := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token":"` + issued + `","token_type":"bearer"}`))
		}))

		ok, err := svc.Login(context.Background(), "admin@example.com", "pw")
		require.NoError(t, err)
		assert.True(t, ok)

		stored, present := creds.Read()
		require.True(t, present)
		assert.Equal(t, issued, stored)
	})

	t.Run("declined credentials return false without error", func(t *testing.T) {
		svc, creds := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		ok, err := svc.Login(context.Background(), "a@b.c", "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
		_, present := creds.Read()
		assert.False(t, present)
	})

	t.Run("response without access_token persists nothing", func(t *testing.T) {
		svc, creds := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"token_type":"bearer"}`))
		}))

		ok, err := svc.Login(context.Background(), "a@b.c", "pw")
		require.NoError(t, err)
		assert.False(t, ok)
		_, present := creds.Read()
		assert.False(t, present)
	})

	t.Run("server error propagates", func(t *testing.T) {
		svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		ok, err := svc.Login(context.Background(), "a@b.c", "pw")
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestServiceHasValidToken(t *testing.T) {
	svc, creds := newTestService(t, http.NotFoundHandler())

	assert.False(t, svc.HasValidToken(), "no token")

	require.NoError(t, creds.Save("not-a-jwt"))
	assert.False(t, svc.HasValidToken(), "malformed token")

	require.NoError(t, creds.Save(mintToken(t, "42", "admin", time.Now().Add(-time.Minute))))
	assert.False(t, svc.HasValidToken(), "expired token")

	require.NoError(t, creds.Save(mintToken(t, "42", "admin", time.Now().Add(time.Hour))))
	assert.True(t, svc.HasValidToken(), "fresh token")
}

func TestServiceTokenHint(t *testing.T) {
	svc, creds := newTestService(t, http.NotFoundHandler())

	assert.Nil(t, svc.TokenHint(), "no token")

	require.NoError(t, creds.Save("garbage"))
	assert.Nil(t, svc.TokenHint(), "malformed token never errors, just nil")

	require.NoError(t, creds.Save(mintToken(t, "42", "admin", time.Now().Add(time.Hour))))
	hint := svc.TokenHint()
	require.NotNil(t, hint)
	assert.Equal(t, "42", hint.ID)
	assert.Equal(t, models.RoleAdmin, hint.Role)
}

func TestServiceLogout(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)
	creds := credstore.NewStore(filepath.Join(t.TempDir(), "token"))
	client := api.NewClient(server.URL, 5*time.Second, creds, zap.NewNop())

	teardowns := 0
	svc := NewService(client, creds, func() { teardowns++ }, zap.NewNop())

	require.NoError(t, creds.Save(mintToken(t, "42", "admin", time.Now().Add(time.Hour))))

	svc.Logout()
	_, present := creds.Read()
	assert.False(t, present)
	assert.Equal(t, 1, teardowns)

	// Logging out with no session active is harmless.
	svc.Logout()
	assert.Equal(t, 2, teardowns)
}
