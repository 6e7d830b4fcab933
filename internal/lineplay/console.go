// Package lineplay runs the game as a plain line-oriented session on a
// reader and writer, for pipes, dumb terminals and -plain.
package lineplay

import (
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/hazelnt/gameAI/internal/typewriter"
)

const clearScreen = "\033[H\033[2J"

// Console is a typewriter.Surface that streams text to a writer. Lines can
// only grow, so each SetText writes just the newly revealed runes.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	ansi  bool
	text  *color.Color
	gen   int
	lines int
}

// NewConsole writes to w. With ansi set, Clear wipes the screen and the
// session shows an input prompt.
func NewConsole(w io.Writer, ansi bool) *Console {
	return &Console{
		w:    w,
		ansi: ansi,
		text: color.New(color.FgGreen),
	}
}

type consoleLine struct {
	c       *Console
	gen     int
	written int
}

func (l *consoleLine) SetText(s string) {
	c := l.c
	c.mu.Lock()
	defer c.mu.Unlock()
	if l.gen != c.gen {
		return
	}
	r := []rune(s)
	if len(r) <= l.written {
		return
	}
	c.text.Fprint(c.w, string(r[l.written:]))
	l.written = len(r)
}

func (c *Console) AppendLine() typewriter.Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lines > 0 {
		io.WriteString(c.w, "\n")
	}
	c.lines++
	return &consoleLine{c: c, gen: c.gen}
}

// Clear drops pending writes from older lines. Without ANSI support the
// old text simply stays above.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.ansi {
		io.WriteString(c.w, clearScreen)
		c.lines = 0
	}
}

func (c *Console) ScrollToBottom() {}

// Prompt ends the current output line and, on a terminal, shows the
// input prompt.
func (c *Console) Prompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lines > 0 {
		io.WriteString(c.w, "\n")
	}
	if c.ansi {
		color.New(color.FgHiBlack).Fprint(c.w, "input> ")
	}
	c.lines = 0
}
