package game

import (
	"sync"
	"sync/atomic"
)

// RoundState carries the flags shared by every actor: whether the music
// has stopped and whether the game is over, plus the per-round seat
// ordinal used for display. One mutex and one condition guard both
// flags; every transition broadcasts so no waiter is left behind.
//
// Only the arbiter flips these flags. Participants just wait on them.
type RoundState struct {
	mu   sync.Mutex
	cond *sync.Cond

	musicStopped bool
	gameOver     bool
	round        int
	seatOrdinal  int
}

func NewRoundState() *RoundState {
	s := &RoundState{}
	s.cond = sync.NewCond(&s.mu)

	return s
}

// BeginRound advances the round counter and returns the new round
// number. Arbiter-only, called while the music is still playing.
func (s *RoundState) BeginRound() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round++

	return s.round
}

// Round returns the current round number. Stable for participants
// during the claim window, since only the arbiter advances it.
func (s *RoundState) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.round
}

// StopMusic opens the claim window and wakes every waiting participant.
func (s *RoundState) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicStopped = true

	s.cond.Broadcast()
}

// StartMusic closes the claim window for the next round and resets the
// seat ordinal. Called by the arbiter only, after every live
// participant has had its chance to attempt.
func (s *RoundState) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicStopped = false
	s.seatOrdinal = 0
}

// EndGame marks the game over and wakes everyone a final time so idle
// participants can exit. This is the only cancellation signal.
func (s *RoundState) EndGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gameOver = true

	s.cond.Broadcast()
}

// AwaitMusicStop blocks until the music stops or the game ends,
// reporting which. A participant that already attempted this round
// keeps sleeping through the scramble window — without the attempted
// term it would spin between its claim and the next StartMusic.
func (s *RoundState) AwaitMusicStop(attempted *atomic.Bool) (gameOver bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.gameOver && (!s.musicStopped || attempted.Load()) {
		s.cond.Wait()
	}

	return s.gameOver
}

// NextSeat hands out 1-based seat labels in claim order for display.
func (s *RoundState) NextSeat() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seatOrdinal++

	return s.seatOrdinal
}

// MusicStopped reports whether the claim window is currently open.
func (s *RoundState) MusicStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.musicStopped
}

// GameOver reports whether the game has ended.
func (s *RoundState) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gameOver
}
