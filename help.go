package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/hazelnt/gameAI/internal/config"
)

func printHelp() {
	color.Green("AI Awakening - Version %s", version)
	color.White("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	white := color.New(color.FgWhite)
	gray := color.New(color.FgHiBlack)

	color.Cyan("USAGE:")
	white.Print("    ./awaken               ")
	gray.Println("# Full-screen terminal")
	white.Print("    ./awaken -plain        ")
	gray.Println("# Line mode, also used when input is piped")
	white.Print("    ./awaken -fast         ")
	gray.Println("# Print lines without the typewriter effect")
	white.Print("    ./awaken -delay 40     ")
	gray.Println("# 40 ms per character")
	white.Print("    ./awaken -log game.log ")
	gray.Println("# Append a log to game.log")
	white.Print("    ./awaken -debug        ")
	gray.Println("# Log at debug level")
	fmt.Println()

	color.Yellow("COMMANDS:")
	white.Print("    start  ")
	gray.Println("Begin a new run at level 1")
	white.Print("    next   ")
	gray.Println("Move to the next level after answering")
	white.Print("    retry  ")
	gray.Println("Ask the current question again")
	white.Print("    exit   ")
	gray.Println("End the run and see your rank")
	fmt.Println()

	color.Magenta("KEYS (full-screen):")
	white.Print("    Enter  ")
	gray.Println("Open the terminal / submit")
	white.Print("    Esc    ")
	gray.Println("Hide the terminal, the game keeps its place")
	white.Print("    Ctrl+C ")
	gray.Println("Quit")
	fmt.Println()

	color.Cyan("CONFIGURATION:")
	gray.Printf("    %s next to the executable, created on first run.\n", config.FileName)
	gray.Println("    AWAKEN_TYPING_DELAY, AWAKEN_COLOR, AWAKEN_PLAIN, AWAKEN_LOG_FILE and")
	gray.Println("    AWAKEN_LOG_LEVEL override it; flags override both.")
}
