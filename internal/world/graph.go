package world

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownLocation   = errors.New("unknown location")
	ErrDuplicateLocation = errors.New("duplicate location")
	ErrGraphSealed       = errors.New("location graph is sealed")
)

// Location is a node of the dungeon. Its exits are one-way: a link from A to B
// says nothing about a link from B to A.
type Location struct {
	ID          string
	Description string

	exits map[string]*Location
	dirs  []string // exit labels in the order they were set
}

// Exit returns the neighbour in the given direction, or nil when there is no door.
func (l *Location) Exit(direction string) *Location {
	return l.exits[direction]
}

// Directions returns the exit labels in configuration order.
func (l *Location) Directions() []string {
	return append([]string(nil), l.dirs...)
}

// Neighbours returns the exit targets in configuration order.
func (l *Location) Neighbours() []*Location {
	out := make([]*Location, 0, len(l.dirs))
	for _, d := range l.dirs {
		out = append(out, l.exits[d])
	}
	return out
}

// ExitString describes the exits, e.g. "Exits: north west".
func (l *Location) ExitString() string {
	var b strings.Builder
	b.WriteString("Exits:")
	for _, d := range l.dirs {
		b.WriteString(" " + d)
	}
	return b.String()
}

// LongDescription returns "You are in the <description>." followed by the exits.
func (l *Location) LongDescription() []string {
	return []string{"You are in the " + l.Description + ".", l.ExitString()}
}

func (l *Location) String() string {
	return l.Description
}

// Graph owns every location. It is built once, sealed, and never changes afterwards.
type Graph struct {
	byID   map[string]*Location
	order  []*Location
	sealed bool
}

func NewGraph() *Graph {
	return &Graph{byID: make(map[string]*Location)}
}

// AddLocation registers a location with no exits.
func (g *Graph) AddLocation(id, description string) (*Location, error) {
	if g.sealed {
		return nil, ErrGraphSealed
	}
	if _, ok := g.byID[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, id)
	}
	loc := &Location{ID: id, Description: description, exits: make(map[string]*Location)}
	g.byID[id] = loc
	g.order = append(g.order, loc)
	return loc, nil
}

// SetExit registers a directed edge. Setting an existing direction again replaces its target.
func (g *Graph) SetExit(from, direction, to string) error {
	if g.sealed {
		return ErrGraphSealed
	}
	src, ok := g.byID[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, from)
	}
	dst, ok := g.byID[to]
	if !ok {
		return fmt.Errorf("%w: %q (exit %q of %q)", ErrUnknownLocation, to, direction, from)
	}
	if _, exists := src.exits[direction]; !exists {
		src.dirs = append(src.dirs, direction)
	}
	src.exits[direction] = dst
	return nil
}

// GetExit returns the neighbour of loc in direction, or nil.
func (g *Graph) GetExit(loc *Location, direction string) *Location {
	if loc == nil {
		return nil
	}
	return loc.Exit(direction)
}

// Seal freezes the topology.
func (g *Graph) Seal() {
	g.sealed = true
}

func (g *Graph) Location(id string) (*Location, bool) {
	loc, ok := g.byID[id]
	return loc, ok
}

// Locations returns every location in insertion order.
func (g *Graph) Locations() []*Location {
	return append([]*Location(nil), g.order...)
}

func (g *Graph) Len() int {
	return len(g.order)
}
