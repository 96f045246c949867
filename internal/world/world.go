package world

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tatianab/dungeon-escape/internal/logger"
	"github.com/tatianab/dungeon-escape/internal/models"
)

// Status is the session state machine. Everything but Playing is terminal.
type Status int

const (
	Playing Status = iota
	Won
	Lost
	Quit
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	case Quit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further command may change the world.
func (s Status) Terminal() bool { return s != Playing }

// World is one game session: the graph, everything placed in it, the player and
// the trade/key state. All mutation goes through its methods.
type World struct {
	graph       *Graph
	start       *Location
	exit        *Location
	transporter *Location
	spawn       []*Location // locations eligible for random placement

	player   *Player
	items    []*Item    // on the ground
	weapons  []*Weapon  // on the ground
	monsters []*Monster // alive
	npc      *NPC       // nil once traded away

	itemKinds   []string
	weaponKinds []string
	welcome     []string
	help        []string

	hasKey     bool
	trail      []*Location // where Back leads, most recent last
	teleported bool
	status     Status

	rng Chooser
	log logrus.FieldLogger
}

// New builds the graph from d, seals it, and places every entity. Dangling
// references are configuration errors. log may be nil.
func New(d *models.Dungeon, rng Chooser, log logrus.FieldLogger) (*World, error) {
	if log == nil {
		log = logger.Log
	}
	g := NewGraph()
	for _, r := range d.Rooms {
		if _, err := g.AddLocation(r.ID, r.Description); err != nil {
			return nil, err
		}
	}
	for _, r := range d.Rooms {
		for _, e := range r.Exits {
			if err := g.SetExit(r.ID, e.Direction, e.Target); err != nil {
				return nil, err
			}
		}
	}
	g.Seal()

	w := &World{
		graph:   g,
		welcome: d.Welcome,
		help:    d.Help,
		rng:     rng,
		log:     log,
	}

	var err error
	if w.start, err = w.special("start", d.Start); err != nil {
		return nil, err
	}
	if w.exit, err = w.special("exit", d.Exit); err != nil {
		return nil, err
	}
	if d.Transporter != "" {
		if w.transporter, err = w.special("transporter", d.Transporter); err != nil {
			return nil, err
		}
	}
	for _, loc := range g.Locations() {
		if loc != w.start && loc != w.exit && loc != w.transporter {
			w.spawn = append(w.spawn, loc)
		}
	}

	w.player = NewPlayer(d.Player.HP, d.Player.Capacity)
	w.player.MoveTo(w.start)

	if err := w.place(d); err != nil {
		return nil, err
	}

	w.log.WithFields(logrus.Fields{
		"locations": g.Len(),
		"items":     len(w.items),
		"weapons":   len(w.weapons),
		"monsters":  len(w.monsters),
	}).Debug("World created.")
	return w, nil
}

func (w *World) special(role, id string) (*Location, error) {
	loc, ok := w.graph.Location(id)
	if !ok {
		return nil, fmt.Errorf("%s room: %w: %q", role, ErrUnknownLocation, id)
	}
	return loc, nil
}

func (w *World) place(d *models.Dungeon) error {
	if len(w.spawn) == 0 && randomlyPlaced(d) > 0 {
		return fmt.Errorf("no location available for random placement")
	}

	for _, s := range d.Items {
		w.itemKinds = append(w.itemKinds, models.KindOf(s.Name))
		for i := range s.Count {
			loc := w.randomLocation()
			w.items = append(w.items, &Item{
				Core:   Core{Name: fmt.Sprintf("%s # %d", s.Name, i+1), Description: s.Description, Location: loc},
				Weight: s.Weight.At(w.rng.Intn(s.Weight.Choices())),
			})
		}
	}

	for _, s := range d.Weapons {
		w.weaponKinds = append(w.weaponKinds, models.KindOf(s.Name))
		for i := range s.Count {
			loc := w.start
			if i >= s.AtStart {
				loc = w.randomLocation()
			}
			w.weapons = append(w.weapons, &Weapon{
				Core:   Core{Name: fmt.Sprintf("%s # %d", s.Name, i+1), Description: s.Description, Location: loc},
				Weight: s.Weight.At(w.rng.Intn(s.Weight.Choices())),
				HP:     s.HP,
			})
		}
	}

	for _, s := range d.Monsters {
		for i := range s.Count {
			w.monsters = append(w.monsters, &Monster{
				Core: Core{Name: fmt.Sprintf("%s # %d", s.Name, i+1), Description: s.Description, Location: w.randomLocation()},
				HP:   s.HP,
			})
		}
	}

	if d.NPC.Name != "" {
		w.npc = &NPC{
			Core:    Core{Name: d.NPC.Name, Description: d.NPC.Description, Location: w.randomLocation()},
			Accepts: d.NPC.Accepts,
		}
	}
	return nil
}

func randomlyPlaced(d *models.Dungeon) int {
	n := 0
	for _, s := range d.Items {
		n += s.Count
	}
	for _, s := range d.Weapons {
		n += s.Count - s.AtStart
	}
	for _, s := range d.Monsters {
		n += s.Count
	}
	if d.NPC.Name != "" {
		n++
	}
	return n
}

func (w *World) isSpawn(loc *Location) bool {
	return slices.Contains(w.spawn, loc)
}

// randomLocation picks uniformly among locations other than start, exit and transporter.
func (w *World) randomLocation() *Location {
	return choose(w.rng, w.spawn)
}

func (w *World) Graph() *Graph { return w.graph }
func (w *World) Player() *Player { return w.player }
func (w *World) Current() *Location { return w.player.Location }
func (w *World) Start() *Location { return w.start }
func (w *World) ExitLocation() *Location { return w.exit }
func (w *World) Transporter() *Location { return w.transporter }
func (w *World) HasKey() bool { return w.hasKey }
func (w *World) Status() Status { return w.status }
func (w *World) NPC() *NPC { return w.npc }
func (w *World) Monsters() []*Monster { return slices.Clone(w.monsters) }
func (w *World) GroundItems() []*Item { return slices.Clone(w.items) }
func (w *World) GroundWeapons() []*Weapon { return slices.Clone(w.weapons) }
func (w *World) Help() []string { return slices.Clone(w.help) }

// LastLocation is where Back would lead, or nil.
func (w *World) LastLocation() *Location {
	if len(w.trail) == 0 {
		return nil
	}
	return w.trail[len(w.trail)-1]
}

// Kinds returns every kind the player can pick or drop.
func (w *World) Kinds() []string {
	return append(slices.Clone(w.itemKinds), w.weaponKinds...)
}

// MonstersIn returns the live monsters at loc in placement order.
func (w *World) MonstersIn(loc *Location) []*Monster {
	var out []*Monster
	for _, m := range w.monsters {
		if m.Location == loc {
			out = append(out, m)
		}
	}
	return out
}

func (w *World) itemsIn(loc *Location) []*Item {
	var out []*Item
	for _, it := range w.items {
		if it.Location == loc {
			out = append(out, it)
		}
	}
	return out
}

func (w *World) weaponsIn(loc *Location) []*Weapon {
	var out []*Weapon
	for _, wp := range w.weapons {
		if wp.Location == loc {
			out = append(out, wp)
		}
	}
	return out
}

func (w *World) npcHere() bool {
	return w.npc != nil && w.npc.Location == w.Current()
}

// Welcome returns the opening banner and the first room description.
func (w *World) Welcome() []string {
	lines := append(slices.Clone(w.welcome), "")
	lines = append(lines, w.Current().LongDescription()...)
	return append(lines, w.contents()...)
}

// Look describes the current room and what is in it.
func (w *World) Look() []string {
	return append(w.Current().LongDescription(), w.contents()...)
}

func (w *World) contents() []string {
	loc := w.Current()
	lines := []string{
		"This room has following objects:",
		"Items: " + joinDescribed(w.itemsIn(loc)),
		"Weapons: " + joinDescribed(w.weaponsIn(loc)),
		"Monsters: " + joinDescribed(w.MonstersIn(loc)),
	}
	if w.npcHere() {
		lines = append(lines, Describe(w.npc))
	}
	return lines
}

func joinDescribed[E Entity](es []E) string {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, Describe(e))
	}
	return strings.Join(parts, ", ")
}

// Wander gives every live monster and the NPC one random step. Creatures stay out
// of the start, exit and transporter rooms, like at placement. It returns how many moved.
func (w *World) Wander() int {
	moved := 0
	for _, m := range w.monsters {
		if Wander(m, w.rng, w.isSpawn) {
			moved++
		}
	}
	if w.npc != nil && Wander(w.npc, w.rng, w.isSpawn) {
		moved++
	}
	return moved
}
