package config

import (
	"github.com/urfave/cli/v3"
)

// Flags returns the command-line flags shared by the game and the server.
// Every flag can also be set through the environment variable it names.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"l"},
			Usage:   "number of rows in the field",
			Value:   d.Length,
			Sources: cli.EnvVars("HAT_LENGTH"),
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Usage:   "number of columns in the field",
			Value:   d.Width,
			Sources: cli.EnvVars("HAT_WIDTH"),
		},
		&cli.FloatFlag{
			Name:    "holes",
			Usage:   "percentage of the field covered by holes, 0 to below 100",
			Value:   d.HolePercent,
			Sources: cli.EnvVars("HAT_HOLES"),
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed for field generation (0 picks one from the clock)",
			Sources: cli.EnvVars("HAT_SEED"),
		},
		&cli.BoolFlag{
			Name:    "skip-setup",
			Usage:   "start playing without the setup screen",
			Sources: cli.EnvVars("HAT_SKIP_SETUP"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "trace, debug, info, warn or error",
			Value:   d.LogLevel,
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "append logs to this file instead of the default destination",
			Sources: cli.EnvVars("LOG_FILE"),
		},
	}
}

// FromCommand reads the Flags values from a parsed command and validates
// them.
func FromCommand(cmd *cli.Command) (Settings, error) {
	s := Settings{
		Length:      cmd.Int("length"),
		Width:       cmd.Int("width"),
		HolePercent: cmd.Float("holes"),
		Seed:        cmd.Int64("seed"),
		SkipSetup:   cmd.Bool("skip-setup"),
		LogLevel:    cmd.String("log-level"),
		LogFile:     cmd.String("log-file"),
	}
	return s, s.Validate()
}
