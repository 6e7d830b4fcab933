package lineplay

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/hazelnt/gameAI/internal/game"
)

// Run plays the intro, then submits each input line in turn and waits for
// its narration before reading the next, so scripted input is never
// dropped. It returns at EOF or when ctx is done.
func Run(ctx context.Context, ctrl *game.Controller, con *Console, in io.Reader) error {
	if err := wait(ctx, ctrl.Intro()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		con.Prompt()
		if !scanner.Scan() {
			break
		}
		if err := wait(ctx, ctrl.Submit(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func wait(ctx context.Context, done <-chan struct{}) error {
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
