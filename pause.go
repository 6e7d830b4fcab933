package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v3/process"
)

// Parent processes that keep their window open after we exit.
var shellParents = map[string][]string{
	"windows": {"powershell.exe", "pwsh.exe", "cmd.exe", "wt.exe"},
	"other":   {"bash", "zsh", "sh", "fish", "gnome-terminal-server", "konsole", "xterm"},
}

func keepsWindowOpen(goos, parent string) bool {
	key := "other"
	if goos == "windows" {
		key = "windows"
	}
	parent = strings.ToLower(parent)
	for _, name := range shellParents[key] {
		if parent == name {
			return true
		}
	}
	return false
}

// shouldPause reports whether the game was most likely started from a file
// manager, whose console window would vanish on exit. Unknown parents pause.
func shouldPause() bool {
	parent, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return true
	}
	name, err := parent.Name()
	if err != nil {
		return true
	}
	return !keepsWindowOpen(runtime.GOOS, name)
}

func pauseBeforeExit(in io.Reader) {
	fmt.Println()
	color.New(color.FgYellow).Print("Press Enter to exit...")
	bufio.NewReader(in).ReadBytes('\n')
}
