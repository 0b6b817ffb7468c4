// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	"quoteapi/config"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/service"
)

const (
	argon2Identifier = "argon2id"

	// Stored hashes outside these bounds are treated as corrupt rather than
	// decoded, so a bad row cannot make Check allocate unbounded memory.
	minStoredSaltLength = 8
	maxStoredKeyLength  = 1024
	maxStoredMemoryKiB  = 4 * 1024 * 1024
)

// argon2Params is the parameter set encoded into every hash.
type argon2Params struct {
	memory      uint32
	time        uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// argon2Hasher is a concrete implementation of the PasswordHasher interface using argon2id.
type argon2Hasher struct {
	params argon2Params
	policy passwordPolicy
	pool   *HashPool
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config, pool *HashPool) service.PasswordHasher {
	params := argon2Params{
		memory:      64 * 1024,
		time:        3,
		parallelism: 4,
		saltLength:  16,
		keyLength:   32,
	}
	if cfg.Auth != nil {
		a := cfg.Auth.Argon2
		if a.MemoryKiB > 0 {
			params.memory = a.MemoryKiB
		}
		if a.Time > 0 {
			params.time = a.Time
		}
		if a.Parallelism > 0 {
			params.parallelism = a.Parallelism
		}
		if a.SaltLength >= minStoredSaltLength {
			params.saltLength = a.SaltLength
		}
		if a.KeyLength > 0 {
			params.keyLength = a.KeyLength
		}
	}

	return &argon2Hasher{
		params: params,
		policy: newPasswordPolicy(cfg.PasswordStrength),
		pool:   pool,
	}
}

func (h *argon2Hasher) ValidatePasswordStrength(password string) error {
	return h.policy.validate(password)
}

// Hash generates a salted argon2id hash in PHC string format.
func (h *argon2Hasher) Hash(ctx context.Context, password string) (string, error) {
	salt := make([]byte, h.params.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var key []byte
	err := h.pool.Run(ctx, func() {
		key = argon2.IDKey([]byte(password), salt, h.params.time, h.params.memory, h.params.parallelism, h.params.keyLength)
	})
	if err != nil {
		return "", err
	}

	return encodeHash(h.params, salt, key), nil
}

// Check compares a plaintext password with a stored argon2id hash.
func (h *argon2Hasher) Check(ctx context.Context, password, encodedHash string) (bool, error) {
	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	var candidate []byte
	err = h.pool.Run(ctx, func() {
		candidate = argon2.IDKey([]byte(password), salt, params.time, params.memory, params.parallelism, params.keyLength)
	})
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func encodeHash(p argon2Params, salt, key []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Identifier,
		argon2.Version,
		p.memory, p.time, p.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string) (argon2Params, []byte, []byte, error) {
	var p argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, malformedHash("unexpected number of fields")
	}
	if parts[1] != argon2Identifier {
		return p, nil, nil, malformedHash("unsupported algorithm " + parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, malformedHash("unreadable version")
	}
	if version != argon2.Version {
		return p, nil, nil, malformedHash(fmt.Sprintf("unsupported version %d", version))
	}

	var parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &parallelism); err != nil {
		return p, nil, nil, malformedHash("unreadable parameters")
	}
	if p.time < 1 || parallelism < 1 || parallelism > 255 {
		return p, nil, nil, malformedHash("parameters out of range")
	}
	p.parallelism = uint8(parallelism)
	if p.memory < 8*parallelism || p.memory > maxStoredMemoryKiB {
		return p, nil, nil, malformedHash("memory cost out of range")
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(salt) < minStoredSaltLength {
		return p, nil, nil, malformedHash("invalid salt")
	}
	p.saltLength = uint32(len(salt))

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxStoredKeyLength {
		return p, nil, nil, malformedHash("invalid key")
	}
	p.keyLength = uint32(len(key))

	return p, salt, key, nil
}

func malformedHash(reason string) error {
	return errors.WithStack(domainerrors.ErrPreconditionViolation.WithDetails("stored password hash: " + reason))
}
