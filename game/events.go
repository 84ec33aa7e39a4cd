package game

// Events emitted over Game.Events(), one struct per line of play.
// Consumers type-switch on the stream; the CLI renders each as a
// single console line.

// RoundStarted announces a new round while the music is still playing.
type RoundStarted struct {
	Round   int
	Players int
	Chairs  int
}

// MusicStopped marks the start of the scramble for seats.
type MusicStopped struct {
	Round int
}

// SeatClaimed reports a successful claim. Seat is a 1-based label in
// claim order, for display only.
type SeatClaimed struct {
	Round  int
	Player int
	Seat   int
}

// PlayerEliminated reports a failed claim; the player is out for good.
type PlayerEliminated struct {
	Round  int
	Player int
}

// WinnerDeclared is the final event before the stream closes.
type WinnerDeclared struct {
	Player int
	Rounds int
}
