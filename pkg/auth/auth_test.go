package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestHashAndCheckOTP(t *testing.T) {
	hash, err := HashOTP("482913")
	require.NoError(t, err)
	assert.NotEqual(t, "482913", hash)

	assert.True(t, CheckOTP("482913", hash))
	assert.False(t, CheckOTP("482914", hash))
	assert.False(t, CheckOTP("", hash))
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "9876543210", "9876543210"},
		{"country code", "+919876543210", "9876543210"},
		{"formatted", "+91 98765-43210", "9876543210"},
		{"short", "12345", "12345"},
		{"letters", "abc9876543210", "9876543210"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizePhone(tt.input))
		})
	}
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken("6ba7b810-9dad-11d1-80b4-00c04fd430c8", "retiree")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", claims.UserID)
	assert.Equal(t, "retiree", claims.Role)
}

func TestJWTInvalidToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)

	other := NewJWTManager("other-secret", time.Hour)
	token, err := other.GenerateToken("6ba7b810-9dad-11d1-80b4-00c04fd430c8", "retiree")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}
