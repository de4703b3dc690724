// Package cli provides the plain line-mode session loop: read a line,
// step the engine, print the output, until quit or a terminal fight outcome.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tmarek/hoard/engine"
	"github.com/tmarek/hoard/engine/state"
	"github.com/tmarek/hoard/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	EchoInput bool         // echo each input line after the prompt (for script playback)
	Tracer    trace.Tracer // optional per-turn tracing; nil disables
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	return &CLI{
		Engine: eng,
		Defs:   defs,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the session loop. It shows the intro, describes the starting
// room, then loops: prompt → input → step → output. The loop ends when a
// step reports a terminal outcome; the closing message is part of that
// step's output, so Run only stops printing and returns.
func (c *CLI) Run() {
	if c.Defs.Game.Intro != "" {
		c.printLine(c.Defs.Game.Intro)
		c.printLine("")
	}

	c.printResult(c.Engine.Step("look"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			// Re-prompt; an empty line is not an error.
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		result := c.step(input)
		c.printResult(result)

		if result.Outcome != types.OutcomeNone {
			return
		}
	}
}

// step runs one engine turn, wrapped in a trace span when tracing is on.
func (c *CLI) step(input string) types.Result {
	if c.Tracer == nil {
		return c.Engine.Step(input)
	}
	_, span := c.Tracer.Start(context.Background(), "turn",
		trace.WithAttributes(attribute.String("game.command", input)))
	defer span.End()

	result := c.Engine.Step(input)
	span.SetAttributes(
		attribute.Int("game.turn", c.Engine.State.TurnCount),
		attribute.Int("game.outcome", int(result.Outcome)),
	)
	return result
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}
