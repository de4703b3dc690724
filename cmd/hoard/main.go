// Hoard is a small turn-based text adventure: explore the dungeon, arm
// yourself, beat the goblin.
// Usage: hoard [--version] [--plain] [--script <file>] [world_directory]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/tmarek/hoard/cli"
	"github.com/tmarek/hoard/config"
	"github.com/tmarek/hoard/engine"
	"github.com/tmarek/hoard/engine/state"
	"github.com/tmarek/hoard/loader"
	"github.com/tmarek/hoard/telemetry"
	"github.com/tmarek/hoard/tui"
	"github.com/tmarek/hoard/world"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// .env is for local development; env vars may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	plain := cfg.Plain
	worldDir := cfg.WorldDir
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("hoard %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			worldDir = args[i]
		}
	}

	// Custom world from Lua, or the built-in three rooms.
	var defs *state.Defs
	if worldDir != "" {
		defs, err = loader.Load(worldDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
			os.Exit(1)
		}
	} else {
		defs = world.Default()
	}

	eng := engine.New(defs)

	var tracer trace.Tracer
	if telemetry.Enabled() {
		ctx := context.Background()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: telemetry setup failed: %v\n", err)
		} else {
			defer func() { _ = shutdown(ctx) }()
			tracer = telemetry.Tracer("session")
		}
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Printf("%s v%s\n\n", defs.Game.Title, defs.Game.Version)
		c := cli.New(eng, defs)
		c.In = f
		c.EchoInput = true
		c.Tracer = tracer
		c.Run()
		return
	}

	// Use the plain CLI if asked for or when stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("%s v%s\n\n", defs.Game.Title, defs.Game.Version)
		c := cli.New(eng, defs)
		c.Tracer = tracer
		c.Run()
		return
	}

	if err := tui.Run(eng, defs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
