// Package lobby tracks the players connected to the SSH server. Every
// player plays an independent field; the lobby only numbers them, picks a
// highlight color and enforces the connection limit.
package lobby

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrFull is returned by Join when the player limit is reached.
var ErrFull = errors.New("server is full")

// playerColors is the round-robin palette for distinguishing players.
var playerColors = []tcell.Color{
	tcell.ColorAqua,
	tcell.ColorFuchsia,
	tcell.ColorLime,
	tcell.ColorOrange,
	tcell.ColorYellow,
	tcell.ColorSilver,
}

// Player is one connected client.
type Player struct {
	Num    int
	Name   string // display name (sanitized SSH user or "Player N")
	Color  tcell.Color
	Remote string
	Joined time.Time
}

// Lobby is safe for concurrent use.
type Lobby struct {
	mu      sync.Mutex
	players []*Player
	nextNum int
	max     int
	now     func() time.Time
}

// New creates a Lobby admitting at most max players; 0 means no limit.
func New(max int) *Lobby {
	return &Lobby{nextNum: 1, max: max, now: time.Now}
}

// Join registers a new player. An empty name becomes "Player N".
func (l *Lobby) Join(name, remote string) (*Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && len(l.players) >= l.max {
		return nil, fmt.Errorf("%w (%d players)", ErrFull, l.max)
	}
	num := l.nextNum
	l.nextNum++
	if name == "" {
		name = fmt.Sprintf("Player %d", num)
	}
	p := &Player{
		Num:    num,
		Name:   name,
		Color:  playerColors[(num-1)%len(playerColors)],
		Remote: remote,
		Joined: l.now(),
	}
	l.players = append(l.players, p)
	return p, nil
}

// Leave deregisters p. It reports whether p was connected.
func (l *Lobby) Leave(p *Player) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, other := range l.players {
		if other == p {
			l.players = append(l.players[:i], l.players[i+1:]...)
			return true
		}
	}
	return false
}

// Online returns the number of connected players.
func (l *Lobby) Online() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.players)
}

// Names returns the connected players' names in join order.
func (l *Lobby) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, len(l.players))
	for i, p := range l.players {
		names[i] = p.Name
	}
	return names
}
