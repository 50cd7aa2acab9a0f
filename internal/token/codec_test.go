package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastedesk/internal/models"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecode(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
		want    Claims
	}{
		{
			name: "valid token",
			raw:  mintToken(t, jwt.MapClaims{"sub": "42", "role": "admin", "exp": future}),
			want: Claims{Subject: "42", Role: models.RoleAdmin, ExpiresAt: future},
		},
		{
			name: "expired token still decodes",
			raw:  mintToken(t, jwt.MapClaims{"sub": "7", "role": "collector", "exp": int64(1000)}),
			want: Claims{Subject: "7", Role: models.RoleCollector, ExpiresAt: 1000},
		},
		{
			name: "unknown role carried through",
			raw:  mintToken(t, jwt.MapClaims{"sub": "9", "role": "auditor", "exp": future}),
			want: Claims{Subject: "9", Role: models.Role("auditor"), ExpiresAt: future},
		},
		{
			name:    "not a token at all",
			raw:     "garbage",
			wantErr: true,
		},
		{
			name:    "two segments",
			raw:     "abc.def",
			wantErr: true,
		},
		{
			name:    "payload not base64 json",
			raw:     "abc.!!!.def",
			wantErr: true,
		},
		{
			name:    "missing sub",
			raw:     mintToken(t, jwt.MapClaims{"role": "admin", "exp": future}),
			wantErr: true,
		},
		{
			name:    "missing exp",
			raw:     mintToken(t, jwt.MapClaims{"sub": "42", "role": "admin"}),
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Decode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims)
		})
	}
}

func TestDecodeIgnoresSignature(t *testing.T) {
	// Decoding is explicitly unverified: a token signed with any key, or
	// with its signature mangled, still yields its payload.
	raw := mintToken(t, jwt.MapClaims{"sub": "42", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	tampered := raw[:len(raw)-4] + "AAAA"

	claims, err := Decode(tampered)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}
