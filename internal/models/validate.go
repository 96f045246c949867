package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate checks the dungeon for references and values the engine cannot recover
// from at runtime. It reports every problem it finds.
func (d *Dungeon) Validate() error {
	var errs []error

	if len(d.Rooms) == 0 {
		return errors.New("dungeon has no rooms")
	}

	ids := make(map[string]bool, len(d.Rooms))
	for _, r := range d.Rooms {
		if r.ID == "" {
			errs = append(errs, errors.New("room with empty id"))
			continue
		}
		if ids[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate room id %q", r.ID))
		}
		ids[r.ID] = true
	}
	for _, r := range d.Rooms {
		for _, e := range r.Exits {
			if e.Direction == "" {
				errs = append(errs, fmt.Errorf("room %q has an exit without direction", r.ID))
			} else if e.Direction != strings.ToLower(e.Direction) || len(strings.Fields(e.Direction)) != 1 {
				errs = append(errs, fmt.Errorf("room %q exit %q must be a single lower-case word", r.ID, e.Direction))
			}
			if !ids[e.Target] {
				errs = append(errs, fmt.Errorf("room %q exit %q leads to unknown room %q", r.ID, e.Direction, e.Target))
			}
		}
	}

	special := map[string]string{"start": d.Start, "exit": d.Exit}
	if d.Transporter != "" {
		special["transporter"] = d.Transporter
	}
	for role, id := range special {
		if !ids[id] {
			errs = append(errs, fmt.Errorf("%s room %q does not exist", role, id))
		}
	}
	if d.Start == d.Exit || (d.Transporter != "" && (d.Transporter == d.Start || d.Transporter == d.Exit)) {
		errs = append(errs, errors.New("start, exit and transporter rooms must be distinct"))
	}

	if d.Player.HP <= 0 {
		errs = append(errs, fmt.Errorf("player hp must be positive, got %d", d.Player.HP))
	}
	if d.Player.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("player capacity must be positive, got %d", d.Player.Capacity))
	}

	kinds := map[string]bool{}
	placed := 0
	checkItem := func(s ItemSpec) {
		kind := KindOf(s.Name)
		if kind == "" {
			errs = append(errs, errors.New("item kind with empty name"))
			return
		}
		if kinds[kind] {
			errs = append(errs, fmt.Errorf("duplicate item kind %q", kind))
		}
		kinds[kind] = true
		if s.Count < 0 {
			errs = append(errs, fmt.Errorf("%s count must not be negative", kind))
		}
		w := s.Weight
		if w.Min <= 0 || w.Step <= 0 || w.Max < w.Min {
			errs = append(errs, fmt.Errorf("%s weight range %d..%d step %d is invalid", kind, w.Min, w.Max, w.Step))
		}
	}
	for _, s := range d.Items {
		checkItem(s)
		placed += s.Count
	}
	for _, s := range d.Weapons {
		checkItem(s.ItemSpec)
		if s.HP <= 0 {
			errs = append(errs, fmt.Errorf("%s hp must be positive", KindOf(s.Name)))
		}
		if s.AtStart < 0 || s.AtStart > s.Count {
			errs = append(errs, fmt.Errorf("%s at_start %d out of range", KindOf(s.Name), s.AtStart))
		}
		placed += s.Count - s.AtStart
	}
	monsters := map[string]bool{}
	for _, m := range d.Monsters {
		if KindOf(m.Name) == "" {
			errs = append(errs, errors.New("monster kind with empty name"))
		}
		if monsters[m.Name] {
			errs = append(errs, fmt.Errorf("duplicate monster %q", m.Name))
		}
		monsters[m.Name] = true
		if m.HP <= 0 {
			errs = append(errs, fmt.Errorf("%s hp must be positive", m.Name))
		}
		if m.Count < 0 {
			errs = append(errs, fmt.Errorf("%s count must not be negative", m.Name))
		}
		placed += m.Count
	}

	if d.NPC.Name == "" {
		errs = append(errs, errors.New("npc has no name"))
	} else {
		placed++
	}
	for _, k := range d.NPC.Accepts {
		if !slices.ContainsFunc(d.Items, func(s ItemSpec) bool { return KindOf(s.Name) == k }) {
			errs = append(errs, fmt.Errorf("npc accepts unknown item kind %q", k))
		}
	}

	if d.WanderEvery < 0 {
		errs = append(errs, fmt.Errorf("wander_every must not be negative, got %d", d.WanderEvery))
	}

	if placed > 0 && len(ids) <= len(special) {
		errs = append(errs, errors.New("no room left to place entities outside start, exit and transporter"))
	}

	return errors.Join(errs...)
}
