package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテストです", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"invalid utf-8 dropped", "ab\xffcd", "abcd"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestPickTerm(t *testing.T) {
	cases := []struct {
		name    string
		ptyTerm string
		environ []string
		want    string
	}{
		{"pty term allowed", "tmux", nil, "tmux"},
		{"pty term rejected", "../../x", nil, defaultTerm},
		{"from environment", "", []string{"LANG=C", "TERM=screen"}, "screen"},
		{"environment rejected", "", []string{"TERM=evil"}, defaultTerm},
		{"nothing given", "", nil, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pickTerm(tc.ptyTerm, tc.environ); got != tc.want {
				t.Errorf("pickTerm(%q, %v) = %q, want %q", tc.ptyTerm, tc.environ, got, tc.want)
			}
		})
	}
}

func TestLoadOrCreateHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	logger := zerolog.Nop()

	first, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("host key not persisted: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("host key mode = %v, want 0600", perm)
	}

	second, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("reloaded host key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	signer, err := loadOrCreateHostKey(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if signer.PublicKey().Type() != "ssh-ed25519" {
		t.Errorf("key type = %q, want ssh-ed25519", signer.PublicKey().Type())
	}
}

func TestNewCommandFlags(t *testing.T) {
	cmd := newCommand()
	for _, name := range []string{"port", "key", "max-players", "length", "width", "holes", "seed", "log-level"} {
		found := false
		for _, f := range cmd.Flags {
			for _, n := range f.Names() {
				found = found || n == name
			}
		}
		if !found {
			t.Errorf("flag --%s missing", name)
		}
	}
}
