// Package ssh adapts gliderlabs/ssh sessions to tcell so each connected
// player gets a full-screen game of their own.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of an SSH session channel.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

// NewTty wraps s. pty carries the initial window size and winCh the
// window-change requests that follow.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		winCh:   winCh,
		window:  pty.Window,
	}
}

func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the session channel; the client sees the connection end.
func (t *Tty) Close() error { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the server handler.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last size reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	w := t.Window()
	return tcell.WindowSize{Width: w.Width, Height: w.Height}, nil
}

// Window returns the last window reported by the client.
func (t *Tty) Window() gossh.Window {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.window
}

// NotifyResize registers cb to run after every window change. The first
// call starts a goroutine that follows window changes until the client
// disconnects and the channel is closed.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *Tty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
