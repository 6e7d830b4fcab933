//go:build windows

package main

import (
	"golang.org/x/sys/windows"
)

// configureWindowsConsole switches the console to UTF-8 and turns on
// virtual terminal processing so the typewriter output and colours render.
func configureWindowsConsole() {
	const cpUTF8 = 65001
	_ = windows.SetConsoleOutputCP(cpUTF8)
	_ = windows.SetConsoleCP(cpUTF8)

	for _, std := range []uint32{windows.STD_OUTPUT_HANDLE, windows.STD_ERROR_HANDLE} {
		h, err := windows.GetStdHandle(std)
		if err != nil || h == 0 {
			continue
		}
		var mode uint32
		if windows.GetConsoleMode(h, &mode) != nil {
			continue
		}
		mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.ENABLE_PROCESSED_OUTPUT
		_ = windows.SetConsoleMode(h, mode)
	}

	in, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil || in == 0 {
		return
	}
	var mode uint32
	if windows.GetConsoleMode(in, &mode) == nil {
		_ = windows.SetConsoleMode(in, mode|windows.ENABLE_VIRTUAL_TERMINAL_INPUT)
	}
}
