package game

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Participant is one concurrent player. It waits for the music to
// stop, makes exactly one claim attempt per round, and leaves the game
// permanently after a failed attempt.
type Participant struct {
	id int

	// active flips to false exactly once, on elimination, and
	// never back. attempted is set by the participant through a
	// compare-and-swap and cleared only by the arbiter between
	// rounds.
	active    atomic.Bool
	attempted atomic.Bool
}

func newParticipant(id int) *Participant {
	p := &Participant{id: id}
	p.active.Store(true)

	return p
}

// ID returns the participant's stable 1-based identifier.
func (p *Participant) ID() int {
	return p.id
}

// Active reports whether the participant is still in the game.
func (p *Participant) Active() bool {
	return p.active.Load()
}

// Attempted reports whether the participant has claimed this round.
func (p *Participant) Attempted() bool {
	return p.attempted.Load()
}

// resetAttempt re-arms the participant for the next round. Arbiter-only.
func (p *Participant) resetAttempt() {
	p.attempted.Store(false)
}

// run is the participant loop: block until the music stops or the game
// ends, attempt a single seat claim, and either keep playing or exit
// for good. The compare-and-swap on attempted guarantees at most one
// claim per round even under spurious wakeups; the active check keeps
// an already-eliminated participant from ever attempting again.
func (p *Participant) run(state *RoundState, pool *SeatPool, events chan<- any, logger zerolog.Logger) {
	for {
		if gameOver := state.AwaitMusicStop(&p.attempted); gameOver {
			logger.Debug().Int("player", p.id).Msg("game over, leaving")

			return
		}

		if !p.active.Load() || !p.attempted.CompareAndSwap(false, true) {
			continue
		}

		round := state.Round()

		if pool.TryAcquire() {
			seat := state.NextSeat()

			logger.Debug().Int("player", p.id).Int("round", round).Int("seat", seat).Msg("seated")

			events <- SeatClaimed{
				Round:  round,
				Player: p.id,
				Seat:   seat,
			}

			continue
		}

		p.active.Store(false)

		logger.Debug().Int("player", p.id).Int("round", round).Msg("eliminated")

		events <- PlayerEliminated{
			Round:  round,
			Player: p.id,
		}

		return
	}
}
