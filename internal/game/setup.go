package game

import (
	"errors"
	"fmt"
	"strconv"

	"find-your-hat/internal/render"
	"find-your-hat/internal/session"

	"github.com/gdamore/tcell/v2"
)

// errInvalidValue means a form value is not a number.
var errInvalidValue = errors.New("invalid value")

// maxInputLen caps the characters typed into one setup field.
const maxInputLen = 6

// setupInput is one editable numeric value on the setup screen.
type setupInput struct {
	label string
	what  string // used in "Enter a valid <what> of the field"
	value string
}

// setupForm holds the state of the setup screen. It is kept apart from the
// screen so key handling can be driven directly.
type setupForm struct {
	inputs []setupInput
	focus  int
	err    string
	seed   int64
}

type setupResult uint8

const (
	setupEditing setupResult = iota
	setupConfirmed
	setupQuit
)

func newSetupForm(p session.Params) *setupForm {
	return &setupForm{
		inputs: []setupInput{
			{label: "Length", what: "length", value: strconv.Itoa(p.Length)},
			{label: "Width", what: "width", value: strconv.Itoa(p.Width)},
			{label: "Holes %", what: "hole percentage", value: strconv.FormatFloat(p.HolePercent, 'g', -1, 64)},
		},
		seed: p.Seed,
	}
}

// handleKey applies one key press to the form.
func (f *setupForm) handleKey(ev *tcell.EventKey) setupResult {
	f.err = ""
	cur := &f.inputs[f.focus]

	switch ev.Key() {
	case tcell.KeyEnter:
		if _, err := f.params(); err != nil {
			f.err = f.errorText(err)
			return setupEditing
		}
		return setupConfirmed
	case tcell.KeyEscape:
		return setupQuit
	case tcell.KeyTab, tcell.KeyDown:
		f.focus = (f.focus + 1) % len(f.inputs)
	case tcell.KeyBacktab, tcell.KeyUp:
		f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if cur.value != "" {
			cur.value = cur.value[:len(cur.value)-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q' || r == 'Q':
			return setupQuit
		case (r >= '0' && r <= '9') || r == '.':
			if len(cur.value) < maxInputLen {
				cur.value += string(r)
			}
		}
	}
	return setupEditing
}

// params parses and validates the form values.
func (f *setupForm) params() (session.Params, error) {
	length, err := strconv.Atoi(f.inputs[0].value)
	if err != nil {
		return session.Params{}, f.invalid(0)
	}
	width, err := strconv.Atoi(f.inputs[1].value)
	if err != nil {
		return session.Params{}, f.invalid(1)
	}
	holes, err := strconv.ParseFloat(f.inputs[2].value, 64)
	if err != nil {
		return session.Params{}, f.invalid(2)
	}
	p := session.Params{Length: length, Width: width, HolePercent: holes, Seed: f.seed}
	if err := p.Validate(); err != nil {
		return session.Params{}, err
	}
	return p, nil
}

// invalid moves the focus to input i and reports its value as unusable.
func (f *setupForm) invalid(i int) error {
	f.focus = i
	return fmt.Errorf("%w: %s %q", errInvalidValue, f.inputs[i].what, f.inputs[i].value)
}

// errorText is the line shown under the form for an error from params.
func (f *setupForm) errorText(err error) string {
	if errors.Is(err, errInvalidValue) {
		return fmt.Sprintf("Enter a valid %s of the field", f.inputs[f.focus].what)
	}
	return err.Error()
}

// runSetup shows the setup screen and blocks until the player confirms
// valid parameters. Returns false if the player quits.
func (g *Game) runSetup() bool {
	form := newSetupForm(g.params)
	for {
		g.drawSetup(form)
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch form.handleKey(ev) {
			case setupConfirmed:
				p, _ := form.params()
				g.params = p
				g.logger.Debug().
					Int("length", p.Length).
					Int("width", p.Width).
					Float64("hole_percent", p.HolePercent).
					Msg("setup confirmed")
				return true
			case setupQuit:
				return false
			}
		}
	}
}

// drawSetup renders the setup screen.
func (g *Game) drawSetup(form *setupForm) {
	g.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	focusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	render.CenterText(g.screen, 1, "^ FIND YOUR HAT ^", titleStyle)
	render.CenterText(g.screen, 2, "Walk the field, dodge the holes, find your hat.", dimStyle)

	y := 4
	for i, in := range form.inputs {
		prefix := "  "
		style := normalStyle
		if i == form.focus {
			prefix = "► "
			style = focusStyle
		}
		render.DrawText(g.screen, 2, y, fmt.Sprintf("%s%-8s", prefix, in.label), normalStyle)
		render.DrawText(g.screen, 14, y, fmt.Sprintf(" %-*s ", maxInputLen, in.value), style)
		y += 2
	}

	if form.err != "" {
		render.DrawText(g.screen, 2, y, form.err, errStyle)
	}
	y += 2
	render.CenterText(g.screen, y, "[Tab/↑/↓] Next field   [Enter] Play   [Esc/q] Quit", dimStyle)

	g.screen.Show()
}
