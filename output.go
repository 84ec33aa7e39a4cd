package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/Seednode/chairs/game"
)

// newLogger builds the diagnostic logger. Play-by-play lines go to
// stdout through the renderer; everything else goes through zerolog on
// stderr so piping the game transcript stays clean.
func newLogger(cfg *Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.verbose {
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.noColor,
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

var (
	roundLine  = color.New(color.FgCyan)
	stopLine   = color.New(color.FgYellow)
	seatLine   = color.New(color.FgGreen)
	elimLine   = color.New(color.FgRed)
	winnerLine = color.New(color.FgHiYellow, color.Bold)
)

type renderer struct {
	out    io.Writer
	chairs int // chair count of the round in progress
}

func newRenderer() *renderer {
	return &renderer{out: color.Output}
}

// render prints one console line per game event, in event order.
func (r *renderer) render(event any) {
	switch e := event.(type) {
	case game.RoundStarted:
		r.chairs = e.Chairs
		fmt.Fprintln(r.out, "-----------------------------------------------")
		roundLine.Fprintf(r.out, "🎵 Round %d: %d players circle %d chairs\n", e.Round, e.Players, e.Chairs)
	case game.MusicStopped:
		stopLine.Fprintln(r.out, "🔇 The music stops!")
	case game.SeatClaimed:
		seatLine.Fprintf(r.out, "🪑 [Chair %d/%d]: P%d sits down\n", e.Seat, r.chairs, e.Player)
	case game.PlayerEliminated:
		elimLine.Fprintf(r.out, "❌ P%d couldn't find a chair and is out!\n", e.Player)
	case game.WinnerDeclared:
		fmt.Fprintln(r.out, "-----------------------------------------------")
		winnerLine.Fprintf(r.out, "🏆 P%d wins musical chairs after %d rounds!\n", e.Player, e.Rounds)
		fmt.Fprintln(r.out, "Game of musical chairs finished.")
	}
}
