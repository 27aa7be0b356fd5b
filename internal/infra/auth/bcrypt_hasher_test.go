package auth

import (
	"testing"

	"medops/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("Str0ngPassw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPassw0rd!", hash)

	assert.True(t, hasher.Check("Str0ngPassw0rd!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash1, err := hasher.Hash("Str0ngPassw0rd!")
	require.NoError(t, err)
	hash2, err := hasher.Hash("Str0ngPassw0rd!")
	require.NoError(t, err)

	// bcrypt salts every hash.
	assert.NotEqual(t, hash1, hash2)
}

func TestBcryptHasher_NilConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.True(t, hasher.Check("password", hash))
	assert.NoError(t, hasher.ValidatePasswordStrength("anything goes"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid", password: "Str0ngPassw0rd!"},
		{name: "too short", password: "S0r!t", wantErr: "at least 8 characters"},
		{name: "missing uppercase", password: "str0ngpassw0rd!", wantErr: "uppercase letter"},
		{name: "missing lowercase", password: "STR0NGPASSW0RD!", wantErr: "lowercase letter"},
		{name: "missing digit", password: "StrongPassword!", wantErr: "digit"},
		{name: "missing special", password: "Str0ngPassw0rd", wantErr: "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
