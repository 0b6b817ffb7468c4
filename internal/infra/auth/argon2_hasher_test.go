package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteapi/config"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/service"
)

// newTestHasher uses cheap argon2 costs so the suite stays fast.
func newTestHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Argon2: config.Argon2Config{
				Time:        1,
				MemoryKiB:   1024,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
		},
	}

	return NewArgon2Hasher(cfg, NewHashPoolWithSize(2))
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	password := "Valid123!"
	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"), hash)
	assert.NotContains(t, hash, password)

	ok, err := hasher.Check(ctx, password, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check(ctx, "Valid123?", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_SaltsEveryHash(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "Valid123!")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "Valid123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		ok, err := hasher.Check(ctx, "Valid123!", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestArgon2Hasher_CheckAcceptsAnyCandidate(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "Valid123!")
	require.NoError(t, err)

	for _, candidate := range []string{"", " ", "x", strings.Repeat("long", 100), "Valid123!\x00"} {
		ok, err := hasher.Check(ctx, candidate, hash)
		require.NoError(t, err, "candidate %q", candidate)
		assert.False(t, ok, "candidate %q", candidate)
	}
}

func TestArgon2Hasher_VerifiesWithStoredParameters(t *testing.T) {
	ctx := context.Background()
	hash, err := newTestHasher(t).Hash(ctx, "Valid123!")
	require.NoError(t, err)

	// A hasher configured with different costs still verifies older hashes.
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Argon2: config.Argon2Config{Time: 2, MemoryKiB: 2048, Parallelism: 2, SaltLength: 32, KeyLength: 64},
		},
	}
	other := NewArgon2Hasher(cfg, NewHashPoolWithSize(1))

	ok, err := other.Check(ctx, "Valid123!", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2Hasher_MalformedStoredHash(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	valid, err := hasher.Hash(ctx, "Valid123!")
	require.NoError(t, err)
	fields := strings.Split(valid, "$")

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "bcrypt", hash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"},
		{name: "argon2i", hash: strings.Replace(valid, "$argon2id$", "$argon2i$", 1)},
		{name: "wrong version", hash: strings.Replace(valid, "$v=19$", "$v=16$", 1)},
		{name: "zero time", hash: strings.Replace(valid, "t=1", "t=0", 1)},
		{name: "zero parallelism", hash: strings.Replace(valid, "p=1$", "p=0$", 1)},
		{name: "huge memory", hash: strings.Replace(valid, "m=1024", "m=99999999", 1)},
		{name: "bad salt encoding", hash: strings.Join([]string{"", fields[1], fields[2], fields[3], "!!!", fields[5]}, "$")},
		{name: "short salt", hash: strings.Join([]string{"", fields[1], fields[2], fields[3], "c2FsdA", fields[5]}, "$")},
		{name: "missing key", hash: strings.Join([]string{"", fields[1], fields[2], fields[3], fields[4], ""}, "$")},
		{name: "extra field", hash: valid + "$extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Check(ctx, "Valid123!", tt.hash)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrPreconditionViolation)
			assert.False(t, ok)
		})
	}
}

func TestArgon2Hasher_HonorsContext(t *testing.T) {
	hasher := newTestHasher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "Valid123!")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestArgon2Hasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher(t)

	assert.NoError(t, hasher.ValidatePasswordStrength("Valid123!"))
	assert.ErrorIs(t, hasher.ValidatePasswordStrength("NoSpecial1"), domainerrors.ErrPasswordStrength)
}
