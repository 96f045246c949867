package world

import (
	"fmt"
	"slices"

	"github.com/tatianab/dungeon-escape/internal/models"
)

// Core holds what every placed thing has. Location is a reference: relocating an
// entity changes only this pointer, never the Location itself.
type Core struct {
	Name        string
	Description string
	Location    *Location
}

func (c *Core) base() *Core { return c }

// Kind is the lower-cased first word of the name ("Sword # 2" -> "sword").
func (c *Core) Kind() string { return models.KindOf(c.Name) }

// Entity is one of *Item, *Weapon, *Monster or *NPC.
type Entity interface {
	base() *Core
}

// Carryable is an entity the player can hold: *Item or *Weapon.
type Carryable interface {
	Entity
	carriedWeight() int
}

// Item is an inert thing with an immutable weight.
type Item struct {
	Core
	Weight int
}

func (i *Item) carriedWeight() int { return i.Weight }

// Weapon is a carryable thing with a durability pool consumed by combat.
type Weapon struct {
	Core
	Weight int
	HP     int
}

func (w *Weapon) carriedWeight() int { return w.Weight }

// Monster blocks the room it is in until it is defeated.
type Monster struct {
	Core
	HP int
}

// NPC is the trading creature. It takes no part in combat.
type NPC struct {
	Core
	Accepts []string
}

// Base exposes the shared fields of any entity.
func Base(e Entity) *Core {
	return e.base()
}

// WeightOf returns the weight of a carryable entity.
func WeightOf(c Carryable) int {
	return c.carriedWeight()
}

// Describe renders an entity for room listings and inventories.
func Describe(e Entity) string {
	switch e := e.(type) {
	case *Item:
		return fmt.Sprintf("%s (%d pounds)", e.Name, e.Weight)
	case *Weapon:
		return fmt.Sprintf("%s (%d pounds)", e.Name, e.Weight)
	case *Monster:
		return e.Name
	case *NPC:
		return "The " + e.Name
	default:
		return ""
	}
}

// Wander moves a creature one step to an exit of its location chosen uniformly at
// random among the neighbours allowed accepts (nil accepts any). Items and weapons
// never move on their own, and a creature with no allowed neighbour stays put. It
// reports whether the creature moved.
func Wander(e Entity, c Chooser, allowed func(*Location) bool) bool {
	var core *Core
	switch e := e.(type) {
	case *Monster:
		core = &e.Core
	case *NPC:
		core = &e.Core
	default:
		return false
	}
	if core.Location == nil {
		return false
	}
	next := core.Location.Neighbours()
	if allowed != nil {
		next = slices.DeleteFunc(next, func(l *Location) bool { return !allowed(l) })
	}
	if len(next) == 0 {
		return false
	}
	core.Location = choose(c, next)
	return true
}
