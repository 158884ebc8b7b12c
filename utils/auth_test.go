package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret@123", hash)

	assert.True(t, CheckPasswordHash("Secret@123", hash))
	assert.False(t, CheckPasswordHash("secret@123", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestPasswordHashingIsSalted(t *testing.T) {
	first, err := HashPassword("Secret@123")
	require.NoError(t, err)
	second, err := HashPassword("Secret@123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"+12025550143", true},
		{"123456789", false},        // too short
		{"1234567890123456", false}, // too long
		{"98765-43210", false},      // separator
		{"98765 43210", false},      // space
		{"98765432+0", false},       // plus not leading
		{"abcdefghij", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidatePhoneNumber(tt.phone), "phone %q", tt.phone)
	}
}
