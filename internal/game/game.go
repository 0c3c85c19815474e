package game

import (
	"fmt"

	"find-your-hat/internal/render"
	"find-your-hat/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// maxMessages bounds the message log kept for the HUD.
const maxMessages = 50

// Options configures a Game.
type Options struct {
	Params    session.Params // prefilled on the setup screen
	SkipSetup bool           // play Params straight away
	Player    string         // shown in the status line when set
	Color     tcell.Color    // player highlight; ColorDefault keeps the standard one
	Logger    zerolog.Logger
}

// Game is the top-level orchestrator for the full-screen UI.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	params   session.Params
	sess     *session.Session
	messages []string
	logger   zerolog.Logger
}

// New creates a Game drawing on screen. The screen must already be
// initialized; Run finalizes it.
func New(screen tcell.Screen, opts Options) *Game {
	r := render.NewRenderer(screen)
	if opts.Color != tcell.ColorDefault {
		r.SetPlayerColor(opts.Color)
	}
	return &Game{
		screen:   screen,
		renderer: r,
		opts:     opts,
		params:   opts.Params,
		logger:   opts.Logger,
	}
}

// Run drives the setup, play and end screens until the player quits.
func (g *Game) Run() {
	defer g.screen.Fini()

	if !g.opts.SkipSetup && !g.runSetup() {
		return
	}
	for {
		if err := g.startSession(); err != nil {
			g.logger.Error().Err(err).Msg("start session")
			if !g.runSetup() {
				return
			}
			continue
		}

		g.runSession()
		g.sess.Summary().Log(g.logger)
		if g.sess.Outcome() == session.OutcomeQuit {
			return
		}

		switch g.showEndScreen() {
		case endRetry:
		case endSetup:
			if !g.runSetup() {
				return
			}
		default:
			return
		}
	}
}

func (g *Game) startSession() error {
	s, err := session.Start(g.params)
	if err != nil {
		return err
	}
	g.sess = s
	g.messages = nil
	g.addMessage("Find your hat! Use U/D/L/R or the arrow keys to move.")
	g.logger.Debug().Str("session", s.ID).Int64("seed", s.Seed).Msg("session started")
	g.renderer.Resize()
	return nil
}

// runSession plays the current session until it has an outcome.
func (g *Game) runSession() {
	for !g.sess.Done() {
		g.draw()
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			// Screen finalized underneath us.
			g.sess.Quit()
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			g.processAction(keyToAction(ev))
		}
	}
}

// processAction handles one player action.
func (g *Game) processAction(action Action) {
	if action == ActionQuit {
		g.sess.Quit()
		g.addMessage(g.sess.Outcome().Message())
		return
	}
	dir, ok := actionToDirection(action)
	if !ok {
		return
	}
	outcome, err := g.sess.Move(dir)
	switch {
	case outcome != session.OutcomeNone:
		g.addMessage(outcome.Message())
	case err != nil:
		g.addMessage(err.Error())
	}
}

func (g *Game) draw() {
	g.renderer.DrawField(g.sess.Field)
	g.renderer.DrawHUD(g.status(), g.messages)
}

// status is the one-line HUD summary of the running session.
func (g *Game) status() string {
	f := g.sess.Field
	pos := f.Position()
	s := fmt.Sprintf("Field %d×%d  Holes %g%%  Moves %d  At (%d,%d)",
		f.Grid().Length(), f.Grid().Width(), g.params.HolePercent, f.Moves(), pos.Row, pos.Col)
	if g.opts.Player != "" {
		s = g.opts.Player + "  " + s
	}
	return s
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
