package auth

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"

	"quoteapi/config"
)

// HashPool bounds how many argon2 computations run at once.
// Every computation allocates the configured memory cost, so the bound is
// also the ceiling on hashing memory: workers * Argon2.MemoryKiB.
type HashPool struct {
	sem  *semaphore.Weighted
	size int
}

// NewHashPool is the Fx constructor for the shared pool.
func NewHashPool(cfg *config.Config) *HashPool {
	workers := 1
	if cfg != nil && cfg.Auth != nil && cfg.Auth.HashWorkers > 0 {
		workers = cfg.Auth.HashWorkers
	}

	return NewHashPoolWithSize(workers)
}

// NewHashPoolWithSize creates a pool with a fixed number of slots.
func NewHashPoolWithSize(size int) *HashPool {
	if size < 1 {
		size = 1
	}

	return &HashPool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the number of concurrent slots.
func (p *HashPool) Size() int {
	return p.size
}

// Run waits for a free slot and then executes fn in the calling goroutine.
// It returns ctx.Err() without running fn if ctx ends while waiting.
// Once fn has started it always runs to completion.
func (p *HashPool) Run(ctx context.Context, fn func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "waiting for hash slot")
	}
	defer p.sem.Release(1)

	fn()

	return nil
}
