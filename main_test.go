package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazelnt/gameAI/internal/config"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Args
	}{
		{"none", nil, Args{}},
		{"plain", []string{"-plain"}, Args{plain: true}},
		{"fast", []string{"-fast"}, Args{hasDelay: true}},
		{"delay", []string{"-delay", "40"}, Args{hasDelay: true, delay: 40 * time.Millisecond}},
		{"last delay wins", []string{"-delay", "40", "-fast"}, Args{hasDelay: true}},
		{"log", []string{"-log", "game.log", "-debug"}, Args{logFile: "game.log", debug: true}},
		{"help", []string{"-help"}, Args{help: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	for _, argv := range [][]string{
		{"-delay"},
		{"-delay", "soon"},
		{"-delay", "-5"},
		{"-log"},
		{"-turbo"},
	} {
		_, err := parseArgs(argv)
		assert.Error(t, err, "%v", argv)
	}
}

func TestArgsApply(t *testing.T) {
	cfg := config.Default()
	Args{}.apply(cfg)
	assert.Equal(t, config.Default(), cfg, "no flags leave the config alone")

	Args{plain: true, hasDelay: true, logFile: "x.log", debug: true}.apply(cfg)
	assert.True(t, cfg.Settings.Plain)
	assert.Zero(t, cfg.Settings.TypingDelay)
	assert.Equal(t, "x.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestKeepsWindowOpen(t *testing.T) {
	assert.True(t, keepsWindowOpen("linux", "bash"))
	assert.True(t, keepsWindowOpen("darwin", "ZSH"))
	assert.False(t, keepsWindowOpen("linux", "nautilus"))
	assert.True(t, keepsWindowOpen("windows", "PowerShell.exe"))
	assert.False(t, keepsWindowOpen("windows", "explorer.exe"))
	assert.False(t, keepsWindowOpen("windows", "bash"))
}
