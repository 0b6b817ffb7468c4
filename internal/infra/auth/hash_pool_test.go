package auth

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteapi/config"
)

func TestNewHashPool_Size(t *testing.T) {
	assert.Equal(t, 1, NewHashPool(&config.Config{}).Size())
	assert.Equal(t, 3, NewHashPool(&config.Config{Auth: &config.AuthConfig{HashWorkers: 3}}).Size())
	assert.Equal(t, 1, NewHashPoolWithSize(0).Size())
}

func TestHashPool_BoundsConcurrency(t *testing.T) {
	pool := NewHashPoolWithSize(2)
	release := make(chan struct{})

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pool.Run(context.Background(), func() {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				<-release
				running.Add(-1)
			})
			assert.NoError(t, err)
		}()
	}

	require.Eventually(t, func() bool { return running.Load() == 2 }, time.Second, time.Millisecond)
	assert.Never(t, func() bool { return running.Load() > 2 }, 50*time.Millisecond, time.Millisecond)

	close(release)
	wg.Wait()

	assert.Equal(t, int32(2), peak.Load())
}

func TestHashPool_CancelWhileWaiting(t *testing.T) {
	pool := NewHashPoolWithSize(1)
	release := make(chan struct{})
	started := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = pool.Run(context.Background(), func() {
			close(started)
			<-release
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := pool.Run(ctx, func() { called = true })
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)

	close(release)
	<-done

	// The slot is free again once the first job finishes.
	require.NoError(t, pool.Run(context.Background(), func() { called = true }))
	assert.True(t, called)
}
