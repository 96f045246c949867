package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"go east", Command{Verb: Go, Second: "east"}},
		{"  GIVE   Dwarf  Herb ", Command{Verb: Give, Second: "dwarf", Third: "herb"}},
		{"pick sword now please", Command{Verb: Pick, Second: "sword", Third: "now"}},
		{"fight", Command{Verb: Fight}},
		{"dance east", Command{}},
		{"", Command{}},
		{"\t\n", Command{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestCommand(t *testing.T) {
	c := Parse("give dwarf herb")
	assert.False(t, c.Unknown())
	assert.True(t, c.HasSecond())
	assert.True(t, c.HasThird())
	assert.Equal(t, "give dwarf herb", c.String())

	c = Parse("back")
	assert.False(t, c.HasSecond())
	assert.Equal(t, "back", c.String())

	assert.True(t, Parse("xyzzy").Unknown())
	assert.Equal(t, "", Command{}.String())
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"help", "go", "quit", "give", "pick", "drop", "back", "fight", "status"}, Words())
	for _, w := range Words() {
		assert.True(t, IsVerb(w), w)
	}
	assert.False(t, IsVerb("look"))
	assert.False(t, IsVerb("GO"))
}
