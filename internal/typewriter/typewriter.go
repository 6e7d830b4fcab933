// Package typewriter reveals lines of text one character at a time on an
// output surface.
package typewriter

import (
	"sync/atomic"
	"time"
)

// DefaultDelay is the pause between two revealed characters.
const DefaultDelay = 25 * time.Millisecond

// Line is a single line container on a Surface.
type Line interface {
	SetText(text string)
}

// Surface is whatever the renderer draws on: a bubbletea viewport, a plain
// console or an in-memory buffer.
type Surface interface {
	AppendLine() Line
	Clear()
	ScrollToBottom()
}

// Renderer types lines onto a Surface. It does not serialize callers: two
// PrintLine calls in flight at once interleave their ticks.
type Renderer struct {
	surface Surface
	delay   time.Duration
	typing  atomic.Bool
}

func New(surface Surface, delay time.Duration) *Renderer {
	return &Renderer{surface: surface, delay: delay}
}

// Delay returns the default per-character delay of this renderer.
func (r *Renderer) Delay() time.Duration {
	return r.delay
}

// Typing reports whether a line is currently being revealed.
func (r *Renderer) Typing() bool {
	return r.typing.Load()
}

// PrintLine types text with the renderer's default delay.
func (r *Renderer) PrintLine(text string) <-chan struct{} {
	return r.PrintLineDelay(text, r.delay)
}

// PrintLineDelay appends a new line and reveals text one rune per tick. The
// returned channel is closed once the whole text is visible. A delay <= 0
// shows the text at once.
func (r *Renderer) PrintLineDelay(text string, delay time.Duration) <-chan struct{} {
	done := make(chan struct{})
	line := r.surface.AppendLine()
	r.surface.ScrollToBottom()
	r.typing.Store(true)

	if delay <= 0 {
		line.SetText(text)
		r.surface.ScrollToBottom()
		r.typing.Store(false)
		close(done)
		return done
	}

	runes := []rune(text)
	go func() {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()

		i := 0
		for range ticker.C {
			line.SetText(string(runes[:i]))
			i++
			r.surface.ScrollToBottom()
			if i > len(runes) {
				break
			}
		}
		r.typing.Store(false)
		close(done)
	}()
	return done
}

// Clear removes every line from the surface.
func (r *Renderer) Clear() {
	r.surface.Clear()
}
