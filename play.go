package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/Seednode/chairs/game"
)

// Play runs one full game to completion, rendering the event stream as
// it arrives. It returns nil once a winner has been declared, or the
// context error if the run was interrupted.
func Play(ctx context.Context, cfg *Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.noColor {
		color.NoColor = true
	}

	logger := newLogger(cfg)

	logger.Info().Str("version", releaseVersion).Int("players", cfg.players).Msg("starting game")

	g, err := game.New(game.Options{
		Players:  cfg.players,
		MusicMin: cfg.musicMin,
		MusicMax: cfg.musicMax,
		Grace:    cfg.grace,
		Logger:   &logger,
	})
	if err != nil {
		return err
	}

	r := newRenderer()

	done := make(chan struct{})
	go func() {
		defer close(done)

		for event := range g.Events() {
			r.render(event)
		}
	}()

	_, err = g.Run(ctx)

	<-done

	return err
}
