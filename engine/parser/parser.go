// Package parser converts input lines into Command structs.
// Intentionally dumb: no NLP, just normalization and aliases.
package parser

import (
	"strings"

	"github.com/tmarek/hoard/types"
)

var directionExpansions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
	"u": "up",
	"d": "down",
}

// Full direction names that are standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true,
}

var verbAliases = map[string]string{
	// Movement
	"walk": "go",
	"move": "go",
	"head": "go",

	// Take
	"get":  "take",
	"grab": "take",

	// Look
	"l": "look",

	// Inventory
	"i":   "inventory",
	"inv": "inventory",

	// Combat
	"attack": "fight",
	"hit":    "fight",
	"kill":   "fight",

	// Map
	"m": "map",

	// Help
	"h": "help",
	"?": "help",

	// Quit
	"q":    "quit",
	"exit": "quit",
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw input line into a Command. Input is trimmed,
// case-folded, and split on whitespace; the first word is the verb and the
// rest (minus articles) is the argument.
func Parse(input string) types.Command {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Command{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "south", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Command{Verb: "go", Arg: dir}
		}
		if directionNames[words[0]] {
			return types.Command{Verb: "go", Arg: words[0]}
		}
	}

	// "pick up <item>" → take <item>
	if len(words) >= 2 && words[0] == "pick" && words[1] == "up" {
		words = append([]string{"take"}, words[2:]...)
	}

	verb := words[0]
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}

	rest := stripArticles(words[1:])

	// Direction abbreviations also work as arguments: "go n".
	if verb == "go" && len(rest) == 1 {
		if dir, ok := directionExpansions[rest[0]]; ok {
			rest[0] = dir
		}
	}

	return types.Command{
		Verb: verb,
		Arg:  strings.Join(rest, " "),
	}
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
