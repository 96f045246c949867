package world

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/dungeon-escape/internal/models"
)

// testDungeon: hall(a) -east-> cellar(b) -east-> exit(x), cellar -north-> vault(c),
// hall -south-> transporter(t). Only b and c receive random placements.
func testDungeon() *models.Dungeon {
	weight := models.WeightRange{Min: 10, Max: 10, Step: 10}
	return &models.Dungeon{
		Title:   "test",
		Welcome: []string{"Welcome!"},
		Help:    []string{"Find the key."},
		Rooms: []models.RoomSpec{
			{ID: "a", Description: "hall", Exits: []models.ExitSpec{
				{Direction: "east", Target: "b"},
				{Direction: "south", Target: "t"},
			}},
			{ID: "b", Description: "cellar", Exits: []models.ExitSpec{
				{Direction: "west", Target: "a"},
				{Direction: "east", Target: "x"},
				{Direction: "north", Target: "c"},
			}},
			{ID: "c", Description: "vault", Exits: []models.ExitSpec{
				{Direction: "south", Target: "b"},
			}},
			{ID: "t", Description: "magic room", Exits: []models.ExitSpec{
				{Direction: "north", Target: "a"},
			}},
			{ID: "x", Description: "gate", Exits: []models.ExitSpec{
				{Direction: "west", Target: "b"},
			}},
		},
		Start:       "a",
		Exit:        "x",
		Transporter: "t",
		Player:      models.PlayerSpec{HP: 40, Capacity: 200},
		Items: []models.ItemSpec{
			{Name: "Food", Weight: weight},
			{Name: "Herb", Weight: weight},
		},
		Weapons: []models.WeaponSpec{
			{ItemSpec: models.ItemSpec{Name: "Sword", Weight: weight}, HP: 100},
			{ItemSpec: models.ItemSpec{Name: "Spear", Weight: weight}, HP: 150},
		},
	}
}

func newTestWorld(t *testing.T, seq ...int) *World {
	t.Helper()
	w, err := New(testDungeon(), NewSequenceSource(seq...), nil)
	require.NoError(t, err)
	return w
}

func loc(t *testing.T, w *World, id string) *Location {
	t.Helper()
	l, ok := w.Graph().Location(id)
	require.True(t, ok, "location %q", id)
	return l
}

func putMonster(t *testing.T, w *World, name string, hp int, at string) *Monster {
	t.Helper()
	m := &Monster{Core: Core{Name: name, Location: loc(t, w, at)}, HP: hp}
	w.monsters = append(w.monsters, m)
	return m
}

func putItem(t *testing.T, w *World, name string, weight int, at string) *Item {
	t.Helper()
	it := &Item{Core: Core{Name: name, Location: loc(t, w, at)}, Weight: weight}
	w.items = append(w.items, it)
	return it
}

func putWeapon(t *testing.T, w *World, name string, weight, hp int, at string) *Weapon {
	t.Helper()
	wp := &Weapon{Core: Core{Name: name, Location: loc(t, w, at)}, Weight: weight, HP: hp}
	w.weapons = append(w.weapons, wp)
	return wp
}

func putDwarf(t *testing.T, w *World, at string) *NPC {
	t.Helper()
	w.npc = &NPC{Core: Core{Name: "Dwarf", Location: loc(t, w, at)}, Accepts: []string{"food", "herb"}}
	return w.npc
}

// carriedWeight sums the weights of everything the player holds.
func carriedWeight(p *Player) int {
	sum := 0
	for _, it := range p.Items() {
		sum += it.Weight
	}
	for _, w := range p.Weapons() {
		sum += w.Weight
	}
	return sum
}
