package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	grace    time.Duration
	musicMax time.Duration
	musicMin time.Duration
	noColor  bool
	players  int
	verbose  bool
	version  bool
}

func (c *Config) validate() error {
	if c.players < 2 {
		return fmt.Errorf("invalid player count (must be at least 2): %d", c.players)
	}
	if c.musicMin <= 0 || c.musicMax <= 0 || c.grace <= 0 {
		return errors.New("all durations must be positive")
	}
	if c.musicMax < c.musicMin {
		return fmt.Errorf("--music-min (%s) must not exceed --music-max (%s)", c.musicMin, c.musicMax)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CHAIRS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "chairs",
		Short:         "A concurrent musical chairs simulation, one goroutine per player.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return Play(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.DurationVar(&cfg.grace, "grace", 500*time.Millisecond, "scramble window after the music stops (env: CHAIRS_GRACE)")
	fs.DurationVar(&cfg.musicMax, "music-max", 3*time.Second, "longest stretch of music per round (env: CHAIRS_MUSIC_MAX)")
	fs.DurationVar(&cfg.musicMin, "music-min", time.Second, "shortest stretch of music per round (env: CHAIRS_MUSIC_MIN)")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output (env: CHAIRS_NO_COLOR)")
	fs.IntVarP(&cfg.players, "players", "n", 4, "number of players, minimum 2 (env: CHAIRS_PLAYERS)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: CHAIRS_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: CHAIRS_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("chairs v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
