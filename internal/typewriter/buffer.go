package typewriter

import (
	"strings"
	"sync"
)

// Buffer is an in-memory Surface. It is safe for concurrent use: the
// renderer writes from its ticker goroutine while a UI reads Lines.
type Buffer struct {
	mu       sync.Mutex
	lines    []string
	gen      int
	onChange func(scroll bool)
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// OnChange registers a callback fired after every mutation. scroll is true
// when the change was a request to follow the newest line.
func (b *Buffer) OnChange(fn func(scroll bool)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

type bufferLine struct {
	b   *Buffer
	idx int
	gen int
}

func (l *bufferLine) SetText(text string) {
	l.b.mu.Lock()
	// A Clear since AppendLine invalidates this container.
	if l.gen != l.b.gen || l.idx >= len(l.b.lines) {
		l.b.mu.Unlock()
		return
	}
	l.b.lines[l.idx] = text
	fn := l.b.onChange
	l.b.mu.Unlock()
	if fn != nil {
		fn(false)
	}
}

func (b *Buffer) AppendLine() Line {
	b.mu.Lock()
	b.lines = append(b.lines, "")
	l := &bufferLine{b: b, idx: len(b.lines) - 1, gen: b.gen}
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn(false)
	}
	return l
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	b.lines = nil
	b.gen++
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn(false)
	}
}

func (b *Buffer) ScrollToBottom() {
	b.mu.Lock()
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn(true)
	}
}

// Lines returns a copy of the current line contents.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins all lines with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
