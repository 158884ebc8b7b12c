package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestValidatePasswordStrength(t *testing.T) {
	ok, problems := ValidatePasswordStrength("Secret123")
	assert.True(t, ok)
	assert.Empty(t, problems)

	ok, problems = ValidatePasswordStrength("short1A")
	assert.False(t, ok)
	assert.Len(t, problems, 1)

	ok, problems = ValidatePasswordStrength("alllowercase1")
	assert.False(t, ok)
	assert.Len(t, problems, 1)

	ok, problems = ValidatePasswordStrength("NODIGITSHERE")
	assert.False(t, ok)
	assert.Len(t, problems, 2) // missing lowercase and digit

	ok, problems = ValidatePasswordStrength("")
	assert.False(t, ok)
	assert.Len(t, problems, 4)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;", SanitizeInput("<script>"))
	assert.Equal(t, "&quot;quoted&quot;", SanitizeInput("\"quoted\""))
	assert.Equal(t, "plain text", SanitizeInput("  plain text  "))
	assert.Equal(t, "", SanitizeInput("   "))
}

func TestRateLimiterReusesLimiterPerKey(t *testing.T) {
	rl := NewRateLimiter()

	first := rl.GetLimiter("auth|1.2.3.4", rate.Limit(1), 2)
	second := rl.GetLimiter("auth|1.2.3.4", rate.Limit(1), 2)
	require.Same(t, first, second)

	other := rl.GetLimiter("auth|5.6.7.8", rate.Limit(1), 2)
	assert.NotSame(t, first, other)
}

func TestRateLimiterEnforcesBurst(t *testing.T) {
	rl := NewRateLimiter()
	limiter := rl.GetLimiter("test", rate.Limit(0.001), 2)

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}
