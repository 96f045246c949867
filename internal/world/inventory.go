package world

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrNotFound         = errors.New("not carried")
)

// Player carries items and weapons against a weight budget. remaining is kept
// incrementally: it always equals capacity minus the weight of everything held.
type Player struct {
	HP       int
	Location *Location

	capacity  int
	remaining int
	items     []*Item
	weapons   []*Weapon
}

func NewPlayer(hp, capacity int) *Player {
	return &Player{HP: hp, capacity: capacity, remaining: capacity}
}

func (p *Player) Capacity() int  { return p.capacity }
func (p *Player) Remaining() int { return p.remaining }

// Items returns the carried items in pick-up order.
func (p *Player) Items() []*Item { return slices.Clone(p.items) }

// Weapons returns the arsenal in pick-up order.
func (p *Player) Weapons() []*Weapon { return slices.Clone(p.weapons) }

// Add puts c into the matching collection, or fails with ErrCapacityExceeded
// when it is heavier than what the player can still carry.
func (p *Player) Add(c Carryable) error {
	w := c.carriedWeight()
	if w > p.remaining {
		return fmt.Errorf("%w: %s weighs %d, %d left", ErrCapacityExceeded, Base(c).Name, w, p.remaining)
	}
	switch c := c.(type) {
	case *Item:
		p.items = append(p.items, c)
	case *Weapon:
		p.weapons = append(p.weapons, c)
	}
	p.remaining -= w
	Base(c).Location = p.Location
	return nil
}

// Remove takes c out of the inventory and gives its weight back.
func (p *Player) Remove(c Carryable) error {
	i := -1
	switch c := c.(type) {
	case *Item:
		if i = slices.Index(p.items, c); i >= 0 {
			p.items = slices.Delete(p.items, i, i+1)
		}
	case *Weapon:
		if i = slices.Index(p.weapons, c); i >= 0 {
			p.weapons = slices.Delete(p.weapons, i, i+1)
		}
	}
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, Base(c).Name)
	}
	p.remaining += c.carriedWeight()
	return nil
}

// FindItem returns the first carried item of the given kind, or nil.
func (p *Player) FindItem(kind string) *Item {
	for _, it := range p.items {
		if it.Kind() == kind {
			return it
		}
	}
	return nil
}

// FindWeapon returns the first weapon of the given kind, or nil.
func (p *Player) FindWeapon(kind string) *Weapon {
	for _, w := range p.weapons {
		if w.Kind() == kind {
			return w
		}
	}
	return nil
}

// FindByKind searches items first, then weapons.
func (p *Player) FindByKind(kind string) Carryable {
	if it := p.FindItem(kind); it != nil {
		return it
	}
	if w := p.FindWeapon(kind); w != nil {
		return w
	}
	return nil
}

// MoveTo relocates the player together with everything carried.
func (p *Player) MoveTo(loc *Location) {
	for _, it := range p.items {
		it.Location = loc
	}
	for _, w := range p.weapons {
		w.Location = loc
	}
	p.Location = loc
}
