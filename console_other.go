//go:build !windows

package main

// Unix terminals already speak UTF-8 and ANSI.
func configureWindowsConsole() {}
