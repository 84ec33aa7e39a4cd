/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package game implements a musical chairs elimination game played by
// N goroutines against one arbiter goroutine. The arbiter stops the
// music at random intervals; participants race to claim seats from a
// shared pool holding one seat fewer than there are players; whoever
// misses out is eliminated, and rounds repeat until one player
// remains.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

var ErrTooFewPlayers = errors.New("a game needs at least two players")

// Options configures a Game. Clock and Logger are optional; the zero
// value of every duration falls back to the listed default.
type Options struct {
	Players  int
	MusicMin time.Duration // default 1s
	MusicMax time.Duration // default 3s
	Grace    time.Duration // default 500ms
	Clock    clockwork.Clock
	Logger   *zerolog.Logger
}

// Game owns the shared state and all actors for one simulation. Create
// with New, drain Events from another goroutine, and call Run once.
type Game struct {
	state   *RoundState
	pool    *SeatPool
	players []*Participant
	arbiter *Arbiter
	events  chan any
	logger  zerolog.Logger
}

func New(opts Options) (*Game, error) {
	if opts.Players < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, opts.Players)
	}

	if opts.MusicMin <= 0 {
		opts.MusicMin = time.Second
	}
	if opts.MusicMax <= 0 {
		opts.MusicMax = 3 * time.Second
	}
	if opts.MusicMax < opts.MusicMin {
		return nil, fmt.Errorf("music interval inverted: %s > %s", opts.MusicMin, opts.MusicMax)
	}
	if opts.Grace <= 0 {
		opts.Grace = 500 * time.Millisecond
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	g := &Game{
		state:  NewRoundState(),
		pool:   NewSeatPool(opts.Players - 1),
		events: make(chan any, opts.Players*4),
		logger: logger,
	}

	for id := 1; id <= opts.Players; id++ {
		g.players = append(g.players, newParticipant(id))
	}

	g.arbiter = &Arbiter{
		state:    g.state,
		pool:     g.pool,
		players:  g.players,
		clock:    opts.Clock,
		musicMin: opts.MusicMin,
		musicMax: opts.MusicMax,
		grace:    opts.Grace,
		events:   g.events,
		logger:   logger,
	}

	return g, nil
}

// Events returns the stream of play-by-play events. The channel is
// closed once Run returns, after every actor has exited.
func (g *Game) Events() <-chan any {
	return g.events
}

// Players returns the participants, for observation only.
func (g *Game) Players() []*Participant {
	return g.players
}

// Pool returns the seat pool, for observation only.
func (g *Game) Pool() *SeatPool {
	return g.pool
}

// Run plays the game to completion and returns the winner's id. It
// spawns one goroutine per participant, runs the arbiter on the
// calling goroutine, and closes the event stream once everyone has
// exited. Canceling ctx ends the game early; the error is ctx.Err()
// and the winner id is zero.
func (g *Game) Run(ctx context.Context) (int, error) {
	var wg sync.WaitGroup

	for _, p := range g.players {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.run(g.state, g.pool, g.events, g.logger)
		}()
	}

	winner, err := g.arbiter.run(ctx)

	wg.Wait()
	close(g.events)

	return winner, err
}
