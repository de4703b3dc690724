package parser

import (
	"testing"

	"github.com/tmarek/hoard/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Command{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Command{},
		},

		// Basic verbs (no argument)
		{
			name:  "look",
			input: "look",
			want:  types.Command{Verb: "look"},
		},
		{
			name:  "inventory",
			input: "inventory",
			want:  types.Command{Verb: "inventory"},
		},
		{
			name:  "fight",
			input: "fight",
			want:  types.Command{Verb: "fight"},
		},
		{
			name:  "map",
			input: "map",
			want:  types.Command{Verb: "map"},
		},
		{
			name:  "help",
			input: "help",
			want:  types.Command{Verb: "help"},
		},
		{
			name:  "quit",
			input: "quit",
			want:  types.Command{Verb: "quit"},
		},

		// Normalization
		{
			name:  "uppercase folds",
			input: "GO NORTH",
			want:  types.Command{Verb: "go", Arg: "north"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  take sword  ",
			want:  types.Command{Verb: "take", Arg: "sword"},
		},
		{
			name:  "internal runs of spaces collapse",
			input: "go    north",
			want:  types.Command{Verb: "go", Arg: "north"},
		},

		// Verb aliases
		{
			name:  "l → look",
			input: "l",
			want:  types.Command{Verb: "look"},
		},
		{
			name:  "i → inventory",
			input: "i",
			want:  types.Command{Verb: "inventory"},
		},
		{
			name:  "get sword → take sword",
			input: "get sword",
			want:  types.Command{Verb: "take", Arg: "sword"},
		},
		{
			name:  "pick up sword → take sword",
			input: "pick up sword",
			want:  types.Command{Verb: "take", Arg: "sword"},
		},
		{
			name:  "attack → fight",
			input: "attack",
			want:  types.Command{Verb: "fight"},
		},
		{
			name:  "exit → quit",
			input: "exit",
			want:  types.Command{Verb: "quit"},
		},

		// Direction shortcuts
		{
			name:  "n → go north",
			input: "n",
			want:  types.Command{Verb: "go", Arg: "north"},
		},
		{
			name:  "south → go south",
			input: "south",
			want:  types.Command{Verb: "go", Arg: "south"},
		},
		{
			name:  "go e expands abbreviation",
			input: "go e",
			want:  types.Command{Verb: "go", Arg: "east"},
		},

		// Articles
		{
			name:  "take the sword",
			input: "take the sword",
			want:  types.Command{Verb: "take", Arg: "sword"},
		},
		{
			name:  "take a sword",
			input: "take a sword",
			want:  types.Command{Verb: "take", Arg: "sword"},
		},

		// Unknown verbs pass through untouched for the engine to reject
		{
			name:  "unknown verb",
			input: "dance",
			want:  types.Command{Verb: "dance"},
		},
		{
			name:  "unknown verb with argument",
			input: "eat mushroom",
			want:  types.Command{Verb: "eat", Arg: "mushroom"},
		},

		// Missing arguments are the dispatcher's problem, not the parser's
		{
			name:  "bare go",
			input: "go",
			want:  types.Command{Verb: "go"},
		},
		{
			name:  "bare take",
			input: "take",
			want:  types.Command{Verb: "take"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
