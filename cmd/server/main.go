// find-your-hat-server serves the game over SSH. Every connection gets its
// own field and plays independently. Build:
//
//	go build -o find-your-hat-server ./cmd/server
//
// Usage:
//
//	./find-your-hat-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"find-your-hat/internal/config"
	"find-your-hat/internal/game"
	"find-your-hat/internal/lobby"
	"find-your-hat/internal/session"
	internalssh "find-your-hat/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes caps the length of a display name taken from the SSH user.
const maxNameBytes = 16

// defaultTerm is used when the client's TERM is not in allowedTerms.
const defaultTerm = "xterm-256color"

// allowedTerms lists the terminal types whose terminfo entries the server
// will load on behalf of a client.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

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
		&cli.IntFlag{
			Name:    "port",
			Usage:   "SSH server port",
			Value:   2222,
			Sources: cli.EnvVars("HAT_PORT"),
		},
		&cli.StringFlag{
			Name:    "key",
			Usage:   "path to the PEM-encoded host key (generated if absent)",
			Value:   "server_host_key",
			Sources: cli.EnvVars("HAT_HOST_KEY"),
		},
		&cli.IntFlag{
			Name:    "max-players",
			Usage:   "maximum simultaneous connections (0 for no limit)",
			Value:   32,
			Sources: cli.EnvVars("HAT_MAX_PLAYERS"),
		},
	)
	return &cli.Command{
		Name:   "find-your-hat-server",
		Usage:  "serve Find Your Hat over SSH",
		Flags:  flags,
		Action: serve,
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := config.OpenLogger(settings.LogLevel, settings.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	signer, err := loadOrCreateHostKey(cmd.String("key"), logger)
	if err != nil {
		return err
	}

	h := &handler{
		lobby:     lobby.New(cmd.Int("max-players")),
		params:    settings.Params(),
		skipSetup: settings.SkipSetup,
		logger:    logger,
	}
	port := cmd.Int("port")
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		_ = srv.Close()
	}()

	logger.Info().Int("port", port).Msgf("listening; connect with: ssh -t -p %d localhost", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("ssh server: %w", err)
	}
	return nil
}

// handler runs one independent game per SSH session.
type handler struct {
	lobby     *lobby.Lobby
	params    session.Params
	skipSetup bool
	logger    zerolog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection. It
// blocks until the game ends so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "Find Your Hat needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}

	player, err := h.lobby.Join(sanitizeName(s.User()), s.RemoteAddr().String())
	if err != nil {
		fmt.Fprintf(s, "Sorry, %v. Try again later.\n", err)
		h.logger.Warn().Err(err).Str("remote", s.RemoteAddr().String()).Msg("connection refused")
		return
	}
	defer h.lobby.Leave(player)

	log := h.logger.With().
		Str("conn", uuid.NewString()).
		Int("player", player.Num).
		Str("name", player.Name).
		Str("remote", player.Remote).
		Logger()
	log.Info().
		Int("online", h.lobby.Online()).
		Strs("players", h.lobby.Names()).
		Msg("player connected")

	term := pickTerm(pty.Term, s.Environ())
	if term != pty.Term {
		log.Debug().Str("requested", pty.Term).Str("using", term).Msg("terminal type replaced")
	}
	screen, err := newScreen(internalssh.NewTty(s, pty, winCh), term)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Error().Err(err).Msg("terminal setup")
		return
	}

	// A dropped connection finalizes the screen, which ends the game loop.
	go func() {
		<-s.Context().Done()
		screen.Fini()
	}()

	game.New(screen, game.Options{
		Params:    h.params,
		SkipSetup: h.skipSetup,
		Player:    player.Name,
		Color:     player.Color,
		Logger:    log,
	}).Run()

	log.Info().Dur("played", time.Since(player.Joined)).Msg("player disconnected")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// newScreen creates and initializes a tcell screen for tty using the
// terminfo entry for term.
func newScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// pickTerm returns the terminal type to use for a client: the PTY's TERM,
// else TERM from the session environment, if allowed; defaultTerm otherwise.
func pickTerm(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if allowedTerms[term] {
		return term
	}
	return defaultTerm
}

// sanitizeName strips control characters and invalid UTF-8 from an SSH
// user name and truncates it to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToValidUTF8(s, "") {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger zerolog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		signer, err := xssh.ParsePrivateKey(data)
		if err == nil {
			logger.Info().Str("path", path).Msg("loaded host key")
			return signer, nil
		}
		logger.Warn().Err(err).Str("path", path).Msg("host key unreadable, generating a new one")
	}

	logger.Info().Str("path", path).Msg("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "find-your-hat server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("host key not saved")
	}
	return signer, nil
}
