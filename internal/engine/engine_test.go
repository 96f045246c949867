package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/dungeon-escape/internal/command"
	"github.com/tatianab/dungeon-escape/internal/models"
	"github.com/tatianab/dungeon-escape/internal/world"
)

// Random placement uses rooms 2 and 5; an empty SequenceSource always picks room 2.
const corridorYAML = `
title: Corridor
welcome: ["Welcome to the corridor."]
help: ["Get the key from the Dwarf."]
start: "1"
exit: "3"
transporter: "4"
player: {hp: 40, capacity: 200}
items:
  - {name: Herb, count: 1, weight: {min: 30, max: 30, step: 10}}
  - {name: Food, count: 0, weight: {min: 30, max: 30, step: 10}}
monsters:
  - {name: Goblin, count: %d, hp: 50}
npc: {name: Dwarf, accepts: [food, herb]}
wander_every: %d
rooms:
  - id: "1"
    description: "first room"
    exits: [{direction: east, target: "2"}]
  - id: "2"
    description: "second room"
    exits:
      - {direction: south, target: "4"}
      - {direction: west, target: "1"}
      - {direction: east, target: "3"}
      - {direction: north, target: "5"}
  - id: "3"
    description: "way out"
  - id: "4"
    description: "transporter"
  - id: "5"
    description: "side room"
    exits: [{direction: south, target: "2"}]
`

func newEngine(t *testing.T, goblins, wanderEvery int) *Engine {
	t.Helper()
	d, err := models.ParseDungeon([]byte(fmt.Sprintf(corridorYAML, goblins, wanderEvery)))
	require.NoError(t, err)
	eng, err := NewEngine(d, world.NewSequenceSource())
	require.NoError(t, err)
	return eng
}

func play(eng *Engine, lines ...string) Turn {
	var turn Turn
	for _, l := range lines {
		turn = eng.ProcessTurn(command.Parse(l))
	}
	return turn
}

func TestEngine_Win(t *testing.T) {
	eng := newEngine(t, 0, 0)

	turn := play(eng, "go east", "pick herb", "give dwarf herb")
	assert.Contains(t, turn.Lines, "Cool! Now you have the key of the exit.")
	assert.True(t, eng.World().HasKey())

	turn = play(eng, "go east")
	assert.Equal(t, world.Won, turn.Status)
	assert.Equal(t, world.Won, eng.Status())
}

func TestEngine_FatalCombat(t *testing.T) {
	eng := newEngine(t, 1, 0)

	play(eng, "go east")
	require.Len(t, eng.World().MonstersIn(eng.World().Current()), 1)

	turn := play(eng, "fight")
	assert.Equal(t, world.Lost, turn.Status)
	assert.Equal(t, "Player Died! You lose.", turn.Lines[len(turn.Lines)-1])

	turn = play(eng, "go west")
	assert.Equal(t, []string{"The game is over."}, turn.Lines)
	assert.Equal(t, "2", eng.World().Current().ID)
}

func TestEngine_Dispatch(t *testing.T) {
	eng := newEngine(t, 0, 0)

	tests := []struct {
		input string
		want  string
	}{
		{"dance wildly", "I don't know what you mean..."},
		{"", "I don't know what you mean..."},
		{"go", "Go where?"},
		{"go north", "There is no door!"},
		{"pick", "pick what?"},
		{"drop herb", "You don't have any herb."},
		{"give", "Give to whom?"},
		{"give dwarf", "Give what?"},
		{"fight", "There is no monster in the room!"},
		{"back", "You can't go back, you haven't gone anywhere yet."},
		{"status", "You can pick items upto weight 200 pounds"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			turn := eng.ProcessTurn(command.Parse(tt.input))
			require.NotEmpty(t, turn.Lines)
			assert.Equal(t, tt.want, turn.Lines[0])
			assert.Equal(t, world.Playing, turn.Status)
		})
	}
}

func TestEngine_Help(t *testing.T) {
	eng := newEngine(t, 0, 0)
	turn := play(eng, "help")
	assert.Equal(t, "Get the key from the Dwarf.", turn.Lines[0])
	assert.Equal(t, strings.Join(command.Words(), " "), turn.Lines[len(turn.Lines)-1])
}

func TestEngine_QuitStopsTheSession(t *testing.T) {
	eng := newEngine(t, 0, 0)
	turn := play(eng, "quit now")
	assert.Equal(t, world.Quit, turn.Status)

	turn = play(eng, "go east")
	assert.Equal(t, []string{"The game is over."}, turn.Lines)
	assert.Equal(t, "1", eng.World().Current().ID)
}

func TestEngine_History(t *testing.T) {
	eng := newEngine(t, 0, 0)
	play(eng, "go east", "pick herb")

	h := eng.History()
	require.Len(t, h.Entries, 2)
	assert.Equal(t, "go east", h.Entries[0].PlayerAction)
	assert.Equal(t, "second room", h.Entries[0].Location)
	assert.Equal(t, "PLAYING", h.Entries[1].Status)
	assert.Equal(t, []string{"Herb # 1"}, h.Entries[1].Inventory)
	assert.Len(t, h.Recent(1), 1)
}

func TestEngine_Wander(t *testing.T) {
	eng := newEngine(t, 1, 1)
	w := eng.World()
	goblin := w.Monsters()[0]
	require.Equal(t, "2", goblin.Location.ID)
	require.Equal(t, "2", w.NPC().Location.ID)

	play(eng, "status")
	assert.Equal(t, "5", goblin.Location.ID, "the side room is the only room creatures may enter")
	assert.Equal(t, "5", w.NPC().Location.ID)

	play(eng, "status")
	assert.Equal(t, "2", goblin.Location.ID)
	assert.Equal(t, "2", w.NPC().Location.ID)
}

func TestEngine_Intro(t *testing.T) {
	eng := newEngine(t, 0, 0)
	intro := eng.Intro()
	assert.Equal(t, "Welcome to the corridor.", intro[0])
	assert.Contains(t, intro, "You are in the first room.")
	assert.NotEmpty(t, eng.SessionID())
}
