// Package command turns a line of player input into a Command: a verb from a
// fixed vocabulary followed by up to two free-form words.
package command

import (
	"slices"
	"strings"
)

// Verb is a known command word. The zero Verb means the input was not understood.
type Verb string

const (
	Help   Verb = "help"
	Go     Verb = "go"
	Quit   Verb = "quit"
	Give   Verb = "give"
	Pick   Verb = "pick"
	Drop   Verb = "drop"
	Back   Verb = "back"
	Fight  Verb = "fight"
	Status Verb = "status"
)

var verbs = []Verb{Help, Go, Quit, Give, Pick, Drop, Back, Fight, Status}

// Words returns the command words in display order.
func Words() []string {
	out := make([]string, len(verbs))
	for i, v := range verbs {
		out[i] = string(v)
	}
	return out
}

// IsVerb reports whether word is a known command word.
func IsVerb(word string) bool {
	return slices.Contains(verbs, Verb(word))
}

// Command is a parsed line. Second and Third are empty when absent.
type Command struct {
	Verb   Verb
	Second string
	Third  string
}

func (c Command) Unknown() bool { return c.Verb == "" }
func (c Command) HasSecond() bool { return c.Second != "" }
func (c Command) HasThird() bool { return c.Third != "" }

func (c Command) String() string {
	return strings.TrimSpace(strings.Join([]string{string(c.Verb), c.Second, c.Third}, " "))
}

// Parse lower-cases the line and keeps its first three whitespace separated
// tokens. An unknown first word yields an unknown Command with no arguments.
func Parse(line string) Command {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 || !IsVerb(tokens[0]) {
		return Command{}
	}
	c := Command{Verb: Verb(tokens[0])}
	if len(tokens) > 1 {
		c.Second = tokens[1]
	}
	if len(tokens) > 2 {
		c.Third = tokens[2]
	}
	return c
}
