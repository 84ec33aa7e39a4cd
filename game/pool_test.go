package game

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSeatPoolTryAcquire(t *testing.T) {
	tests := []struct {
		name     string
		seats    int
		attempts int
		want     int // successful claims
	}{
		{
			name:     "exact fit",
			seats:    3,
			attempts: 3,
			want:     3,
		},
		{
			name:     "one too many",
			seats:    3,
			attempts: 4,
			want:     3,
		},
		{
			name:     "empty pool",
			seats:    0,
			attempts: 2,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewSeatPool(tt.seats)

			got := 0
			for i := 0; i < tt.attempts; i++ {
				if pool.TryAcquire() {
					got++
				}
			}

			if got != tt.want {
				t.Errorf("got %d seats, want %d", got, tt.want)
			}

			if remaining := pool.Available(); remaining != tt.seats-tt.want {
				t.Errorf("got %d seats remaining, want %d", remaining, tt.seats-tt.want)
			}
		})
	}
}

// Hammer the pool from many goroutines and check that exactly as many
// claims succeed as there were seats, with no lost updates.
func TestSeatPoolConcurrentClaims(t *testing.T) {
	const (
		seats      = 7
		goroutines = 32
	)

	pool := NewSeatPool(seats)

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)

	start := make(chan struct{})

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			<-start

			if pool.TryAcquire() {
				successes.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := successes.Load(); got != seats {
		t.Errorf("got %d successful claims, want %d", got, seats)
	}

	if remaining := pool.Available(); remaining != 0 {
		t.Errorf("got %d seats remaining, want 0", remaining)
	}
}

// Interleave claims with releases and verify the books balance.
func TestSeatPoolConcurrentRelease(t *testing.T) {
	const (
		initial   = 4
		releases  = 10
		claimants = 16
	)

	pool := NewSeatPool(initial)

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)

	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < 8; j++ {
				if pool.TryAcquire() {
					successes.Add(1)
				}
			}
		}()
	}

	for i := 0; i < releases; i++ {
		pool.Release(1)
	}

	wg.Wait()

	// Whatever was not claimed must still be in the pool.
	if got := int(successes.Load()) + pool.Available(); got != initial+releases {
		t.Errorf("claims plus remaining = %d, want %d", got, initial+releases)
	}

	if pool.Available() < 0 {
		t.Errorf("pool went negative: %d", pool.Available())
	}
}

func TestSeatPoolDrain(t *testing.T) {
	pool := NewSeatPool(5)

	if !pool.TryAcquire() {
		t.Fatal("claim from full pool failed")
	}

	if drained := pool.Drain(); drained != 4 {
		t.Errorf("drained %d seats, want 4", drained)
	}

	if remaining := pool.Available(); remaining != 0 {
		t.Errorf("got %d seats after drain, want 0", remaining)
	}

	if pool.TryAcquire() {
		t.Error("claim from drained pool succeeded")
	}
}

func TestSeatPoolReset(t *testing.T) {
	pool := NewSeatPool(2)

	pool.Reset(6)

	if got := pool.Available(); got != 6 {
		t.Errorf("got %d seats after reset, want 6", got)
	}

	pool.Reset(0)

	if pool.TryAcquire() {
		t.Error("claim succeeded after reset to zero")
	}
}

func TestSeatPoolAcquireBlocks(t *testing.T) {
	pool := NewSeatPool(0)

	acquired := make(chan struct{})
	go func() {
		pool.Acquire()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("acquire from empty pool did not block")
	case <-time.After(50 * time.Millisecond):
	}

	pool.Release(1)

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("acquire not woken by release")
	}

	if remaining := pool.Available(); remaining != 0 {
		t.Errorf("got %d seats remaining, want 0", remaining)
	}
}

func TestSeatPoolPanics(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{
			name: "negative construction",
			call: func() { NewSeatPool(-1) },
		},
		{
			name: "negative release",
			call: func() { NewSeatPool(1).Release(-2) },
		},
		{
			name: "negative reset",
			call: func() { NewSeatPool(1).Reset(-1) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()

			tt.call()
		})
	}
}
