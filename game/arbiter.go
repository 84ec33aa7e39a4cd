package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Arbiter is the single coordinating actor. It owns every round
// transition: it decides when the music stops, re-arms the seat pool
// between rounds, clears the per-round attempt flags, and declares the
// winner once a single participant remains.
type Arbiter struct {
	state   *RoundState
	pool    *SeatPool
	players []*Participant

	clock    clockwork.Clock
	musicMin time.Duration
	musicMax time.Duration
	grace    time.Duration

	events chan<- any
	logger zerolog.Logger
}

// run drives rounds until one participant is left, then returns the
// winner's id. A canceled context ends the game early with ctx.Err();
// either way EndGame has been broadcast before run returns, so no
// participant is left blocked.
func (a *Arbiter) run(ctx context.Context) (int, error) {
	timer := a.clock.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		round := a.state.BeginRound()
		remaining := a.activeCount()
		chairs := a.pool.Available()

		a.logger.Info().Int("round", round).Int("players", remaining).Int("chairs", chairs).Msg("round starting")

		a.events <- RoundStarted{
			Round:   round,
			Players: remaining,
			Chairs:  chairs,
		}

		// Music plays for a random stretch.
		if err := a.sleep(ctx, timer, a.musicInterval()); err != nil {
			a.state.EndGame()

			return 0, err
		}

		// Emit before the broadcast so no claim can precede the
		// stop line in the stream.
		a.events <- MusicStopped{Round: round}

		a.state.StopMusic()

		// The scramble window. This is a deliberate timing
		// approximation: the grace interval must be generous
		// relative to scheduler latency so that every live
		// participant resolves its claim before the pool is
		// re-armed below. There is no hard barrier here.
		if err := a.sleep(ctx, timer, a.grace); err != nil {
			a.state.EndGame()

			return 0, err
		}

		if stale := a.pool.Drain(); stale != 0 {
			a.logger.Debug().Int("round", round).Int("stale", stale).Msg("drained unclaimed seats")
		}

		survivors := a.activeCount()
		if survivors == 0 {
			panic(fmt.Sprintf("game: no participants left after round %d", round))
		}

		if survivors == 1 {
			break
		}

		// One chair fewer than survivors for the next round.
		a.pool.Reset(survivors - 1)
		a.state.StartMusic()

		for _, p := range a.players {
			p.resetAttempt()
		}
	}

	a.state.EndGame()

	winner := 0
	for _, p := range a.players {
		if p.Active() {
			winner = p.ID()
		}
	}

	a.logger.Info().Int("winner", winner).Int("rounds", a.state.Round()).Msg("game over")

	a.events <- WinnerDeclared{
		Player: winner,
		Rounds: a.state.Round(),
	}

	return winner, nil
}

func (a *Arbiter) activeCount() int {
	count := 0
	for _, p := range a.players {
		if p.Active() {
			count++
		}
	}

	return count
}

func (a *Arbiter) musicInterval() time.Duration {
	if a.musicMax <= a.musicMin {
		return a.musicMin
	}

	return a.musicMin + rand.N(a.musicMax-a.musicMin)
}

func (a *Arbiter) sleep(ctx context.Context, timer clockwork.Timer, d time.Duration) error {
	timer.Reset(d)

	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
