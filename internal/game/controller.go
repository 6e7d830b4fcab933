// Package game holds the AI Awakening quiz: its fixed content tables, the
// command state machine and the Controller that narrates each transition.
package game

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Printer is the narration output the Controller drives. *typewriter.Renderer
// satisfies it.
type Printer interface {
	PrintLine(text string) <-chan struct{}
	Clear()
	Typing() bool
}

// Controller runs the quiz. Input is accepted one command at a time: while a
// narration is running, or the printer is typing, Submit drops input.
type Controller struct {
	out  Printer
	log  *slog.Logger
	busy atomic.Bool

	mu    sync.Mutex
	state State
}

func NewController(out Printer, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{out: out, log: log}
}

// State returns a snapshot of the game state.
func (c *Controller) State() State {
	c.mu.Lock()
	s := c.state
	c.mu.Unlock()
	s.Typing = c.out.Typing()
	return s
}

// Busy reports whether a narration is still running.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// run starts fn as the single narration in flight. It returns nil when
// another narration or a typing line is still going.
func (c *Controller) run(fn func()) <-chan struct{} {
	if c.out.Typing() || !c.busy.CompareAndSwap(false, true) {
		return nil
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer c.busy.Store(false)
		fn()
	}()
	return done
}

// Submit handles one line from the input field. It returns nil when the
// input was dropped or ignored; otherwise the channel closes once the
// resulting narration has finished.
func (c *Controller) Submit(raw string) <-chan struct{} {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	done := c.run(func() { c.handle(raw) })
	if done == nil {
		c.log.Debug("input dropped", "input", raw)
	}
	return done
}

// Intro plays the boot-up narration. It does not touch the game state and
// may be played any number of times.
func (c *Controller) Intro() <-chan struct{} {
	done := c.run(c.introScene)
	if done == nil {
		c.log.Debug("intro skipped, narration in progress")
	}
	return done
}

func (c *Controller) print(lines ...string) {
	for _, l := range lines {
		<-c.out.PrintLine(l)
	}
}

func (c *Controller) handle(raw string) {
	c.print("> " + raw)

	action := Dispatch(c.State(), raw)
	c.log.Debug("transition", "input", raw, "action", action, "level", c.State().Level)

	switch action {
	case ActionStart:
		c.startGame()
	case ActionInvalid:
		c.print(`> Invalid command. Type "start" to begin.`)
	case ActionAnswer:
		c.handleAnswer(Normalize(raw))
	case ActionNext:
		c.nextLevel()
	case ActionRetry:
		c.retryLevel()
	case ActionExit:
		c.endGame()
	case ActionUnknown:
		c.print("> Unknown command.")
	}
}

func (c *Controller) introScene() {
	c.print(
		"> Initializing AI System...",
		"> Loading neural network modules...",
		"> Access Granted.",
		"",
		`Type "start" to begin.`,
	)
}

func (c *Controller) startGame() {
	c.mu.Lock()
	c.state.reset()
	c.mu.Unlock()
	c.log.Info("game started")

	c.out.Clear()
	c.print(
		"> AI Awakening: Discover How AI Works",
		"> Embark on a 15-level journey. Enter answers in the box below when prompted.",
		"",
	)
	c.showStatus()
	c.askQuestion()
}

func (c *Controller) showStatus() {
	s := c.State()
	c.print(
		fmt.Sprintf("Part: %d", s.Part),
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Knowledge Points: %d", s.KnowledgePoints),
		"",
	)
}

func (c *Controller) askQuestion() {
	c.mu.Lock()
	c.state.AwaitingAnswer = true
	level := c.state.Level
	c.mu.Unlock()

	c.print(
		fmt.Sprintf("> Question for Level %d:", level),
		Question(level),
	)
}

func (c *Controller) handleAnswer(answer string) {
	c.mu.Lock()
	level := c.state.Level
	c.mu.Unlock()

	correct := Score(level, answer)
	c.log.Debug("answer scored", "level", level, "correct", correct)
	if correct {
		c.print("> Correct! Type 'next' to continue or 'exit' to quit.")
	} else {
		c.print("> Incorrect. Type 'retry' to try again or 'exit' to quit.")
	}

	c.mu.Lock()
	c.state.AwaitingAnswer = false
	c.mu.Unlock()
}

func (c *Controller) nextLevel() {
	c.mu.Lock()
	more := c.state.advance()
	c.mu.Unlock()

	if !more {
		c.endGame()
		return
	}

	c.out.Clear()
	c.print("", "> Loading next challenge...", "")
	c.showStatus()
	c.askQuestion()
}

func (c *Controller) retryLevel() {
	c.out.Clear()
	c.print("", "> Retrying current level...", "")
	c.showStatus()
	c.askQuestion()
}

func (c *Controller) endGame() {
	s := c.State()
	c.log.Info("game ended", "level", s.Level, "knowledge_points", s.KnowledgePoints)

	c.out.Clear()
	c.print(
		"> Exiting AI System...",
		"",
		Rank(s.Level),
		"",
		"> Simulation complete.",
	)

	c.mu.Lock()
	c.state.Started = false
	c.mu.Unlock()
}
