package models

import "strings"

// Dungeon is the static definition of a game: the room graph, the special rooms and
// every tunable constant of the entities placed at setup.
type Dungeon struct {
	Title       string        `yaml:"title"`
	Welcome     []string      `yaml:"welcome"`
	Help        []string      `yaml:"help"`
	Rooms       []RoomSpec    `yaml:"rooms"`
	Start       string        `yaml:"start"`
	Exit        string        `yaml:"exit"`
	Transporter string        `yaml:"transporter"`
	Player      PlayerSpec    `yaml:"player"`
	Items       []ItemSpec    `yaml:"items"`
	Weapons     []WeaponSpec  `yaml:"weapons"`
	Monsters    []MonsterSpec `yaml:"monsters"`
	NPC         NPCSpec       `yaml:"npc"`
	WanderEvery int           `yaml:"wander_every"` // turns between creature steps, 0 disables
}

// RoomSpec describes one location and its outgoing exits.
type RoomSpec struct {
	ID          string     `yaml:"id"`
	Description string     `yaml:"description"`
	Exits       []ExitSpec `yaml:"exits,omitempty"`
}

// ExitSpec is a one-way labelled edge to another room.
type ExitSpec struct {
	Direction string `yaml:"direction"`
	Target    string `yaml:"target"`
}

type PlayerSpec struct {
	HP       int `yaml:"hp"`
	Capacity int `yaml:"capacity"`
}

// WeightRange is an arithmetic range Min, Min+Step, ..., up to Max inclusive.
type WeightRange struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

// Choices returns how many distinct weights the range holds.
func (r WeightRange) Choices() int {
	return (r.Max-r.Min)/r.Step + 1
}

// At returns the i-th weight of the range.
func (r WeightRange) At(i int) int {
	return r.Min + i*r.Step
}

// ItemSpec describes an inert, carryable kind such as food or herbs.
type ItemSpec struct {
	Name        string      `yaml:"name"` // e.g., "Herb", instances become "Herb # 1"
	Description string      `yaml:"description"`
	Count       int         `yaml:"count"`
	Weight      WeightRange `yaml:"weight"`
}

// WeaponSpec is an ItemSpec with durability. The first AtStart instances are
// placed in the start room instead of a random one.
type WeaponSpec struct {
	ItemSpec `yaml:",inline"`
	HP       int `yaml:"hp"`
	AtStart  int `yaml:"at_start,omitempty"`
}

type MonsterSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Count       int    `yaml:"count"`
	HP          int    `yaml:"hp"`
}

// NPCSpec describes the trading creature holding the key.
type NPCSpec struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Accepts     []string `yaml:"accepts"` // item kinds it trades the key for
}

// HistoryEntry represents a single turn in the game.
type HistoryEntry struct {
	PlayerAction string   `yaml:"player_action"`
	Outcome      string   `yaml:"outcome"`
	Status       string   `yaml:"status"` // "PLAYING", "WON", "LOST", "QUIT"
	Location     string   `yaml:"location"`
	Inventory    []string `yaml:"inventory,omitempty"` // carried things after the turn
}

// GameHistory contains the history of a session.
type GameHistory struct {
	Entries []HistoryEntry `yaml:"entries"`
}

// Recent returns at most the last n entries.
func (h GameHistory) Recent(n int) []HistoryEntry {
	if len(h.Entries) <= n {
		return h.Entries
	}
	return h.Entries[len(h.Entries)-n:]
}

// KindOf returns the lower-cased first word of an entity name: "Herb # 2" -> "herb".
func KindOf(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
