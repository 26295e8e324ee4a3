package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_Next(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, "TC_LOGIN_001", a.Next("TC_LOGIN"))
	assert.Equal(t, "TC_LOGIN_002", a.Next("TC_LOGIN"))
	assert.Equal(t, "TC_LOGIN_003", a.Next("TC_LOGIN"))
}

func TestAllocator_IndependentPrefixes(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, "TC_LOGIN_001", a.Next("TC_LOGIN"))
	assert.Equal(t, "ETC_AUTH_001", a.Next("ETC_AUTH"))
	assert.Equal(t, "TC_LOGIN_002", a.Next("TC_LOGIN"))
	assert.Equal(t, "ETC_AUTH_002", a.Next("ETC_AUTH"))
}

func TestAllocator_NeverRepeats(t *testing.T) {
	a := NewAllocator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := a.Next("TC_X")
		if seen[id] {
			t.Fatalf("duplicate identifier: %s", id)
		}
		seen[id] = true
	}
	assert.Equal(t, "TC_X_1001", a.Next("TC_X"))
}

func TestFeaturePrefix(t *testing.T) {
	tests := []struct {
		name     string
		feature  string
		expected string
	}{
		{
			name:     "simple feature name",
			feature:  "Login Authentication Feature",
			expected: "LOGIN_AUTHENTICATION_FEATURE",
		},
		{
			name:     "punctuation collapsed",
			feature:  "Cart - Checkout (v2)",
			expected: "CART_CHECKOUT_V2",
		},
		{
			name:     "trailing separators trimmed",
			feature:  "Search!!!",
			expected: "SEARCH",
		},
		{
			name:     "digits kept",
			feature:  "OAuth2 Flow",
			expected: "OAUTH2_FLOW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FeaturePrefix(tt.feature))
		})
	}
}
