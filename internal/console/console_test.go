package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"find-your-hat/internal/field"
	"find-your-hat/internal/session"

	"github.com/rs/zerolog"
)

func run(t *testing.T, input string, opts Options) (session.Outcome, string, error) {
	t.Helper()
	var out bytes.Buffer
	o, err := Run(context.Background(), strings.NewReader(input), &out, opts)
	return o, out.String(), err
}

// keyToward returns the key that moves the spawned player onto the first
// cell of kind next to it on a single-row field, or "" if there is none.
func keyToward(t *testing.T, p session.Params, kind field.Cell) string {
	t.Helper()
	s, err := session.Start(p)
	if err != nil {
		t.Fatal(err)
	}
	pos := s.Field.Position()
	g := s.Field.Grid()
	switch {
	case g.InBounds(0, pos.Col-1) && g.At(0, pos.Col-1) == kind:
		return "L"
	case g.InBounds(0, pos.Col+1) && g.At(0, pos.Col+1) == kind:
		return "R"
	}
	return ""
}

func TestRunPromptsThenQuit(t *testing.T) {
	o, out, err := run(t, "3\n4\n0\nQ\n", Options{Prompt: true, Params: session.Params{Seed: 7}})
	if err != nil {
		t.Fatal(err)
	}
	if o != session.OutcomeQuit {
		t.Errorf("outcome = %v, want quit", o)
	}
	for _, want := range []string{
		"Enter length of the field : ",
		"Enter width of the field : ",
		"Enter percentage of holes with in the field : ",
		"Field : \n",
		"U -> to move player up\n",
		"D -> to move player down\n",
		"L -> to move player left\n",
		"R -> to move player right\n",
		"Q -> to quit the game\n",
		"Which way? ::: ",
		"Player has quit the game!\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRendersGeneratedField(t *testing.T) {
	p := session.Params{Length: 2, Width: 3, HolePercent: 20, Seed: 13}
	ref, err := session.Start(p)
	if err != nil {
		t.Fatal(err)
	}
	_, out, err := run(t, "q\n", Options{Params: p})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Field : \n"+ref.Field.Render()+"\n") {
		t.Errorf("output does not start with the field:\n%s", out)
	}
}

func TestRunInvalidAnswers(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantMsg string
		wantErr error
	}{
		{"length not a number", "abc\n", "Enter a valid length of the field", ErrInvalidInput},
		{"width fractional", "3\n2.5\n", "Enter a valid width of the field", ErrInvalidInput},
		{"holes empty", "3\n3\n\n", "Enter a valid hole percentage of the field", ErrInvalidInput},
		{"input closed", "3\n", "Enter a valid width of the field", ErrInvalidInput},
		{"too small", "1\n1\n0\n", "invalid field configuration", field.ErrInvalidConfiguration},
		{"all holes", "2\n2\n100\n", "invalid field configuration", field.ErrInvalidConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, out, err := run(t, tc.input, Options{Prompt: true})
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
			if o != session.OutcomeNone {
				t.Errorf("outcome = %v, want none", o)
			}
			if !strings.Contains(out, tc.wantMsg) {
				t.Errorf("output missing %q:\n%s", tc.wantMsg, out)
			}
		})
	}
}

func TestRunRejectsFractionalSizeImmediately(t *testing.T) {
	cases := []struct {
		name  string
		input string
		what  string
		asked []string
		never string
	}{
		{"length", "2.5\n3\n10\n", "length", []string{"Enter length of the field : "}, "Enter width of the field : "},
		{"width", "3\n2.5\n10\n", "width", []string{"Enter length of the field : ", "Enter width of the field : "}, "Enter percentage of holes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, out, err := run(t, tc.input, Options{Prompt: true})
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
			want := strings.Join(tc.asked, "") + "Enter a valid " + tc.what + " of the field\n"
			if out != want {
				t.Errorf("output = %q, want %q", out, want)
			}
			if strings.Contains(out, tc.never) {
				t.Errorf("asked %q after a bad %s", tc.never, tc.what)
			}
		})
	}
}

func TestRunFindsHat(t *testing.T) {
	p := session.Params{Length: 1, Width: 2, Seed: 42}
	key := keyToward(t, p, field.CellHat)
	if key == "" {
		t.Fatal("hat is not next to the player on a 1x2 field")
	}

	o, out, err := run(t, strings.ToLower(key)+"\n", Options{Params: p})
	if err != nil {
		t.Fatal(err)
	}
	if o != session.OutcomeFoundHat {
		t.Fatalf("outcome = %v, want found_hat", o)
	}
	if !strings.HasSuffix(out, "**\nWow! You found the hat!!\n") {
		t.Errorf("output should end with the walked field and the win line:\n%s", out)
	}
}

func TestRunOutOfBounds(t *testing.T) {
	o, out, err := run(t, "U\n", Options{Params: session.Params{Length: 1, Width: 3, Seed: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if o != session.OutcomeOutOfBounds {
		t.Errorf("outcome = %v, want out_of_bounds", o)
	}
	if !strings.HasSuffix(out, "Game over : Attempts to move “outside” the field.\n") {
		t.Errorf("unexpected ending:\n%s", out)
	}
}

func TestRunFallsInHole(t *testing.T) {
	for seed := int64(1); seed < 200; seed++ {
		p := session.Params{Length: 1, Width: 4, HolePercent: 25, Seed: seed}
		key := keyToward(t, p, field.CellHole)
		if key == "" {
			continue
		}
		o, out, err := run(t, key+"\n", Options{Params: p})
		if err != nil {
			t.Fatal(err)
		}
		if o != session.OutcomeFellInHole {
			t.Errorf("outcome = %v, want fell_in_hole", o)
		}
		if !strings.HasSuffix(out, "Game over : Player falls into the \"hole\".\n") {
			t.Errorf("unexpected ending:\n%s", out)
		}
		return
	}
	t.Fatal("no seed put a hole next to the player")
}

func TestRunUnknownKey(t *testing.T) {
	o, out, err := run(t, "x\nq\n", Options{Params: session.Params{Length: 3, Width: 3, Seed: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if o != session.OutcomeQuit {
		t.Errorf("outcome = %v, want quit", o)
	}
	if !strings.Contains(out, "Please enter a valid key : \n") {
		t.Errorf("output missing invalid key notice:\n%s", out)
	}
	// Once at the start and once after the bad key.
	if n := strings.Count(out, "Field : \n"); n != 2 {
		t.Errorf("field printed %d times, want 2", n)
	}
}

func TestRunEOFQuits(t *testing.T) {
	o, out, err := run(t, "", Options{Params: session.Params{Length: 3, Width: 3, Seed: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if o != session.OutcomeQuit || !strings.HasSuffix(out, "Player has quit the game!\n") {
		t.Errorf("outcome = %v, output:\n%s", o, out)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	o, err := Run(ctx, strings.NewReader("r\n"), &out, Options{Params: session.Params{Length: 3, Width: 3, Seed: 4}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if o != session.OutcomeQuit {
		t.Errorf("outcome = %v, want quit", o)
	}
}

func TestRunLogsSummary(t *testing.T) {
	var logs bytes.Buffer
	_, _, err := run(t, "q\n", Options{Params: session.Params{Length: 2, Width: 2, Seed: 3}, Logger: zerolog.New(&logs)})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), `"outcome":"quit"`) {
		t.Errorf("log = %q", logs.String())
	}
}
