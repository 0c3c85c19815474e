// find-your-hat is a terminal game: walk a field of grass and holes until
// you find your hat. It runs full-screen on a terminal and falls back to
// line-by-line prompts when stdin is not one (or with --plain).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"find-your-hat/internal/config"
	"find-your-hat/internal/console"
	"find-your-hat/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	flags := append(config.Flags(),
		&cli.BoolFlag{
			Name:    "plain",
			Usage:   "use line-by-line prompts instead of the full-screen UI",
			Sources: cli.EnvVars("HAT_PLAIN"),
		},
		&cli.BoolFlag{
			Name:  "prompt",
			Usage: "with --plain, ask for the field size and hole percentage",
			Value: true,
		},
	)
	return &cli.Command{
		Name:   "find-your-hat",
		Usage:  "find your hat without falling into a hole",
		Flags:  flags,
		Action: play,
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}
	settings.Plain = cmd.Bool("plain") || !term.IsTerminal(int(os.Stdin.Fd()))

	// The full-screen UI owns the terminal, so it only logs to a file.
	var fallback io.Writer = io.Discard
	if settings.Plain {
		fallback = os.Stderr
	}
	logger, closer, err := config.OpenLogger(settings.LogLevel, settings.LogFile, fallback)
	if err != nil {
		return err
	}
	defer closer.Close()

	if settings.Plain {
		_, err := console.Run(ctx, os.Stdin, os.Stdout, console.Options{
			Params: settings.Params(),
			Prompt: cmd.Bool("prompt") && !settings.SkipSetup,
			Logger: logger,
		})
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	go func() {
		<-ctx.Done()
		screen.Fini()
	}()

	game.New(screen, game.Options{
		Params:    settings.Params(),
		SkipSetup: settings.SkipSetup,
		Logger:    logger,
	}).Run()
	return nil
}
