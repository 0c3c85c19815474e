// Package console plays the game over plain line-oriented text streams:
// prompts on out, one answer per line on in. It is used when stdin is not
// a terminal or when the full-screen UI is turned off.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"find-your-hat/internal/field"
	"find-your-hat/internal/session"

	"github.com/rs/zerolog"
)

// ErrInvalidInput means a prompted value could not be parsed.
var ErrInvalidInput = errors.New("invalid input")

const quitKey = "Q"

// Options configures Run.
type Options struct {
	Params session.Params
	Prompt bool // ask for length, width and hole percentage on in
	Logger zerolog.Logger
}

type console struct {
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

// Run plays one session. It returns the session outcome; EOF on in counts
// as quitting. Invalid setup answers return an error wrapping
// ErrInvalidInput or field.ErrInvalidConfiguration.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (session.Outcome, error) {
	c := &console{in: bufio.NewScanner(in), out: out, logger: opts.Logger}

	p := opts.Params
	if opts.Prompt {
		var err error
		if p, err = c.promptParams(p.Seed); err != nil {
			return session.OutcomeNone, err
		}
	}

	s, err := session.Start(p)
	if err != nil {
		fmt.Fprintln(out, err)
		return session.OutcomeNone, err
	}
	c.logger.Debug().Str("session", s.ID).Int64("seed", s.Seed).Msg("session started")
	c.printField(s.Field)

	err = c.play(ctx, s)
	fmt.Fprintln(out, s.Outcome().Message())
	s.Summary().Log(c.logger)
	return s.Outcome(), err
}

// play reads moves until the session ends or ctx is cancelled.
func (c *console) play(ctx context.Context, s *session.Session) error {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			s.Quit()
			return err
		}

		c.printKeys()
		line, err := c.prompt("Which way? ::: ")
		if err != nil {
			// Input closed.
			fmt.Fprintln(c.out)
			s.Quit()
			return nil
		}

		if strings.EqualFold(line, quitKey) {
			s.Quit()
			return nil
		}
		dir, err := field.ParseDirection(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid key : ")
			fmt.Fprintln(c.out)
			c.printKeys()
		} else if o, _ := s.Move(dir); o == session.OutcomeFellInHole || o == session.OutcomeOutOfBounds {
			return nil
		}
		c.printField(s.Field)
	}
	return nil
}

// promptParams asks for the generation parameters. Each answer is checked
// before the next question is asked.
func (c *console) promptParams(seed int64) (session.Params, error) {
	length, err := c.promptInt("Enter length of the field : ", "length")
	if err != nil {
		return session.Params{}, err
	}
	width, err := c.promptInt("Enter width of the field : ", "width")
	if err != nil {
		return session.Params{}, err
	}
	holes, err := c.promptNumber("Enter percentage of holes with in the field : ", "hole percentage")
	if err != nil {
		return session.Params{}, err
	}

	p := session.Params{Length: length, Width: width, HolePercent: holes, Seed: seed}
	if err := p.Validate(); err != nil {
		fmt.Fprintln(c.out, err)
		return session.Params{}, err
	}
	return p, nil
}

// promptInt is promptNumber for answers that must be whole numbers.
func (c *console) promptInt(question, what string) (int, error) {
	answer, err := c.prompt(question)
	if err != nil {
		return 0, c.invalid(what, "")
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, c.invalid(what, answer)
	}
	return int(v), nil
}

func (c *console) promptNumber(question, what string) (float64, error) {
	answer, err := c.prompt(question)
	if err != nil {
		return 0, c.invalid(what, "")
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, c.invalid(what, answer)
	}
	return v, nil
}

func (c *console) invalid(what, answer string) error {
	fmt.Fprintf(c.out, "Enter a valid %s of the field\n", what)
	return fmt.Errorf("%w: %s %q", ErrInvalidInput, what, answer)
}

// prompt writes question and returns the next trimmed input line.
func (c *console) prompt(question string) (string, error) {
	fmt.Fprint(c.out, question)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *console) printField(f *field.Field) {
	fmt.Fprintf(c.out, "Field : \n%s\n", f.Render())
}

func (c *console) printKeys() {
	for _, d := range field.Directions {
		fmt.Fprintf(c.out, "%s -> to move player %s\n", d.Key(), d)
	}
	fmt.Fprintf(c.out, "%s -> to quit the game\n", quitKey)
}
