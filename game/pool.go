/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package game

import (
	"fmt"
	"sync"
)

// SeatPool is a counting resource representing the chairs available in
// the current round. Participants race to claim seats with TryAcquire;
// the arbiter re-arms the pool between rounds with Drain and Reset.
// All operations are linearizable with respect to each other.
type SeatPool struct {
	mu    sync.Mutex
	cond  *sync.Cond
	seats int
}

// NewSeatPool returns a pool holding n seats.
func NewSeatPool(n int) *SeatPool {
	if n < 0 {
		panic(fmt.Sprintf("game: seat pool created with %d seats", n))
	}

	p := &SeatPool{seats: n}
	p.cond = sync.NewCond(&p.mu)

	return p
}

// Acquire blocks until a seat is available, then consumes it. Not used
// during play, where a failed claim is itself the elimination signal,
// but kept for callers that want semaphore semantics.
func (p *SeatPool) Acquire() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.seats == 0 {
		p.cond.Wait()
	}

	p.seats--
}

// TryAcquire consumes a seat iff one is available. It never blocks.
func (p *SeatPool) TryAcquire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.seats == 0 {
		return false
	}

	p.seats--

	return true
}

// Release returns n seats to the pool, waking blocked Acquire callers.
// A negative n indicates a synchronization bug and panics.
func (p *SeatPool) Release(n int) {
	if n < 0 {
		panic(fmt.Sprintf("game: released %d seats", n))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.seats += n

	p.cond.Broadcast()
}

// Drain empties the pool and reports how many seats it removed, so
// stale seats from a finished round cannot leak into the next one.
func (p *SeatPool) Drain() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	drained := p.seats
	p.seats = 0

	return drained
}

// Reset sets the pool to exactly n seats, replacing the drain-then-release
// dance for round transitions with a single atomic step.
func (p *SeatPool) Reset(n int) {
	if n < 0 {
		panic(fmt.Sprintf("game: seat pool reset to %d", n))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.seats = n

	p.cond.Broadcast()
}

// Available returns the current seat count.
func (p *SeatPool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.seats
}
