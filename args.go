package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hazelnt/gameAI/internal/config"
)

// Command line arguments structure
type Args struct {
	plain    bool
	debug    bool
	help     bool
	hasDelay bool
	delay    time.Duration
	logFile  string
}

func parseArgs(argv []string) (Args, error) {
	args := Args{}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "-plain":
			args.plain = true
		case "-fast":
			args.hasDelay = true
			args.delay = 0
		case "-debug":
			args.debug = true
		case "-help", "-h", "--help":
			args.help = true
		case "-delay":
			if i+1 >= len(argv) {
				return args, fmt.Errorf("-delay needs a value in milliseconds")
			}
			ms, err := strconv.Atoi(argv[i+1])
			if err != nil || ms < 0 {
				return args, fmt.Errorf("invalid -delay %q: want milliseconds", argv[i+1])
			}
			args.hasDelay = true
			args.delay = time.Duration(ms) * time.Millisecond
			i++
		case "-log":
			if i+1 >= len(argv) {
				return args, fmt.Errorf("-log needs a file name")
			}
			args.logFile = argv[i+1]
			i++
		default:
			return args, fmt.Errorf("unknown option %q", arg)
		}
	}

	return args, nil
}

// apply lays the flags over the loaded configuration.
func (a Args) apply(cfg *config.Config) {
	if a.plain {
		cfg.Settings.Plain = true
	}
	if a.hasDelay {
		cfg.Settings.TypingDelay = a.delay
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if a.debug {
		cfg.Log.Level = "debug"
	}
}
