// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher defines the interface for password policy, hashing and verification.
// This abstracts the underlying hashing algorithm (argon2id), keeping the domain pure.
type PasswordHasher interface {
	// ValidatePasswordStrength returns nil if the password satisfies the policy,
	// otherwise an error wrapping ErrPasswordStrength with a human-readable reason.
	ValidatePasswordStrength(password string) error

	// Hash derives a salted, self-describing hash from a plaintext password.
	// It blocks until a hashing slot is free or ctx is done.
	Hash(ctx context.Context, password string) (string, error)

	// Check reports whether password matches encodedHash.
	// A mismatch is (false, nil). An error means encodedHash itself is malformed
	// (ErrPreconditionViolation) or ctx ended before a hashing slot was free.
	Check(ctx context.Context, password, encodedHash string) (bool, error)
}
