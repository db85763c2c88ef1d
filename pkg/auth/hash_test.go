package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashService_RoundTrip(t *testing.T) {
	hs := &HashService{Cost: bcrypt.MinCost}

	hash, err := hs.HashPassword("open-sesame")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	tests := []struct {
		name     string
		hash     string
		password string
		match    bool
	}{
		{name: "Same password", hash: hash, password: "open-sesame", match: true},
		{name: "Different password", hash: hash, password: "open-sesame!", match: false},
		{name: "Empty password", hash: hash, password: "", match: false},
		{name: "Not a bcrypt hash", hash: "plaintext", password: "plaintext", match: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, hs.ComparePassword(tt.hash, tt.password))
		})
	}
}

func TestHashService_DefaultCost(t *testing.T) {
	hash, err := (&HashService{}).HashPassword("x")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashService_RejectsEmpty(t *testing.T) {
	hash, err := (&HashService{Cost: bcrypt.MinCost}).HashPassword("")
	assert.Error(t, err)
	assert.Empty(t, hash)
}
