package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/hazelnt/gameAI/internal/config"
	"github.com/hazelnt/gameAI/internal/game"
	"github.com/hazelnt/gameAI/internal/lineplay"
	"github.com/hazelnt/gameAI/internal/logging"
	"github.com/hazelnt/gameAI/internal/tui"
	"github.com/hazelnt/gameAI/internal/typewriter"
)

const version = "1.0"

func main() {
	configureWindowsConsole()

	args, err := parseArgs(os.Args[1:])
	if err != nil {
		color.Red("%v", err)
		fmt.Println("Run with -help for usage.")
		os.Exit(2)
	}

	if args.help {
		printHelp()
		return
	}

	if err := run(args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func run(args Args) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	args.apply(cfg)

	if !cfg.Settings.Color {
		color.NoColor = true
	}

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	plain := cfg.Settings.Plain || !stdinTTY || !stdoutTTY

	opts := logging.Options{File: cfg.Log.File, Level: cfg.Log.Level}
	if plain && args.debug {
		opts.Terminal = os.Stderr
	}
	log, closeLog, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	log.Info("starting", "version", version, "plain", plain, "delay", cfg.Settings.TypingDelay, "config", path)

	if plain {
		err = runPlain(log, cfg, stdoutTTY)
	} else {
		err = runTUI(log, cfg)
	}
	if err != nil {
		log.Error("session failed", "err", err)
		return err
	}
	log.Info("session ended")

	if stdinTTY && shouldPause() {
		pauseBeforeExit(os.Stdin)
	}
	return nil
}

func runTUI(log *slog.Logger, cfg *config.Config) error {
	buf := typewriter.NewBuffer()
	ctrl := game.NewController(typewriter.New(buf, cfg.Settings.TypingDelay), log)
	return tui.Run(ctrl, buf)
}

func runPlain(log *slog.Logger, cfg *config.Config, ansi bool) error {
	// Bubble Tea handles its own signals; line mode restores the cursor
	// and leaves.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		sig := <-sigChan
		log.Info("interrupted", "signal", sig.String())
		fmt.Print("\033[?25h\n")
		os.Exit(0)
	}()

	con := lineplay.NewConsole(os.Stdout, ansi)
	ctrl := game.NewController(typewriter.New(con, cfg.Settings.TypingDelay), log)
	return lineplay.Run(context.Background(), ctrl, con, os.Stdin)
}
