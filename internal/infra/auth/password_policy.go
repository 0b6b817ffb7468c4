package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"quoteapi/config"
	domainerrors "quoteapi/internal/domain/errors"
)

const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 64
)

// passwordPolicy enforces length bounds and the four character classes.
// The password is checked exactly as given: surrounding whitespace counts.
type passwordPolicy struct {
	minLength int
	maxLength int
}

func newPasswordPolicy(cfg *config.PasswordStrengthConfig) passwordPolicy {
	policy := passwordPolicy{
		minLength: defaultMinPasswordLength,
		maxLength: defaultMaxPasswordLength,
	}
	if cfg != nil {
		if cfg.MinLength > 0 {
			policy.minLength = cfg.MinLength
		}
		if cfg.MaxLength > 0 {
			policy.maxLength = cfg.MaxLength
		}
	}

	return policy
}

// IsValidPassword reports whether password satisfies the default policy.
func IsValidPassword(password string) bool {
	return newPasswordPolicy(nil).validate(password) == nil
}

func (p passwordPolicy) validate(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.minLength || length > p.maxLength {
		return p.reject(fmt.Sprintf("must be between %d and %d characters long", p.minLength, p.maxLength))
	}
	if !hasDigit(password) {
		return p.reject("must contain at least one number")
	}
	if !hasLowercase(password) {
		return p.reject("must contain at least one lowercase letter")
	}
	if !hasUppercase(password) {
		return p.reject("must contain at least one uppercase letter")
	}
	if !hasSpecialChar(password) {
		return p.reject("must contain at least one special character")
	}

	return nil
}

func (p passwordPolicy) reject(reason string) error {
	return domainerrors.ErrPasswordStrength.WithDetails("password " + reason)
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}

	return false
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}

	return false
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}

	return false
}

// hasSpecialChar reports a rune that is not a letter, a digit or '_'.
func hasSpecialChar(s string) bool {
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
