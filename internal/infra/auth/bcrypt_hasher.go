// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"medops/config"
	"medops/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		strength = cfg.PasswordStrength
	}

	return &bcryptHasher{
		cost:     cost,
		strength: strength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the configured
// strength requirements. Without configuration every password is accepted.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if h.strength == nil {
		return nil
	}

	if h.strength.MinLength > 0 && len(password) < h.strength.MinLength {
		return errors.Errorf("password must be at least %d characters", h.strength.MinLength)
	}
	if h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength {
		return errors.Errorf("password must be at most %d characters", h.strength.MaxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		return errors.New("password must contain an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		return errors.New("password must contain a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		return errors.New("password must contain a digit")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		return errors.New("password must contain a special character")
	}

	return nil
}
