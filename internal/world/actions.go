package world

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

const gameOver = "The game is over."

// Move walks through the exit labelled direction. Reaching the exit needs the key;
// a live monster in the current room blocks every other move.
func (w *World) Move(direction string) []string {
	if w.status.Terminal() {
		return []string{gameOver}
	}
	next := w.Current().Exit(direction)
	if next == nil {
		return []string{"There is no door!"}
	}

	if next == w.exit {
		if !w.hasKey {
			return []string{
				"|\tYou need a Key to exit out of the Dungeon.",
				"|\tCome back again.",
			}
		}
		w.player.MoveTo(next)
		w.status = Won
		w.log.WithField("location", next.ID).Info("Player reached the exit with the key.")
		return []string{
			"Finally! You have found the exit. You win!",
			"Thank you for playing. Good bye.",
		}
	}

	if len(w.MonstersIn(w.Current())) > 0 {
		return []string{
			"Oops! You can't go anywhere, there is a monster in your room.",
			"You must defeat the monster to pass through.",
			"Or use 'back' command to go back to the room you came from.",
		}
	}
	return w.relocate(next, true)
}

// Back returns to the room the player came from. Retreating is allowed while
// monsters are present. It fails right after a teleport.
func (w *World) Back() []string {
	if w.status.Terminal() {
		return []string{gameOver}
	}
	last := w.LastLocation()
	if last == nil {
		if w.teleported {
			return []string{"You can't go back because you were transported here."}
		}
		return []string{"You can't go back, you haven't gone anywhere yet."}
	}
	w.trail = w.trail[:len(w.trail)-1]
	return w.relocate(last, false)
}

// relocate moves the player, teleporting away from the transporter. remember
// records the room left so Back can return to it.
func (w *World) relocate(dest *Location, remember bool) []string {
	var lines []string
	from := w.Current()
	if dest == w.transporter {
		dest = w.randomLocation()
		w.trail = nil
		w.teleported = true
		lines = append(lines,
			"------------------------------",
			"You entered into the Magical Room.",
			"Now you are being transported to a random room....",
		)
	} else if remember {
		w.trail = append(w.trail, from)
	}
	w.player.MoveTo(dest)
	w.log.WithFields(logrus.Fields{"from": from.ID, "to": dest.ID}).Debug("Player moved.")

	lines = append(lines, "")
	return append(lines, w.Look()...)
}

// PickUp takes the first item or weapon of kind lying in the current room.
func (w *World) PickUp(kind string) []string {
	if w.status.Terminal() {
		return []string{gameOver}
	}
	if kind == "" {
		return []string{"pick what?"}
	}

	var (
		target Carryable
		noun   string
	)
	switch {
	case slices.Contains(w.itemKinds, kind):
		noun = "item"
		if found := w.itemsIn(w.Current()); len(found) > 0 {
			if i := slices.IndexFunc(found, func(it *Item) bool { return it.Kind() == kind }); i >= 0 {
				target = found[i]
			}
		}
	case slices.Contains(w.weaponKinds, kind):
		noun = "weapon"
		if found := w.weaponsIn(w.Current()); len(found) > 0 {
			if i := slices.IndexFunc(found, func(wp *Weapon) bool { return wp.Kind() == kind }); i >= 0 {
				target = found[i]
			}
		}
	default:
		return []string{"Item doesn't exist"}
	}

	if target == nil {
		return []string{fmt.Sprintf("There is no %s in this room.", kind)}
	}
	if len(w.MonstersIn(w.Current())) > 0 {
		return []string{fmt.Sprintf("You have to defeat the monster to pick the %s.", noun)}
	}
	if err := w.player.Add(target); err != nil {
		return []string{
			fmt.Sprintf("|\tYou cannot pick %s. It's weight is %d pounds.", Base(target).Name, WeightOf(target)),
			fmt.Sprintf("|\tYou can only pick an %s under %d pounds.", noun, w.player.Remaining()),
		}
	}

	switch t := target.(type) {
	case *Item:
		w.items = slices.DeleteFunc(w.items, func(it *Item) bool { return it == t })
	case *Weapon:
		w.weapons = slices.DeleteFunc(w.weapons, func(wp *Weapon) bool { return wp == t })
	}
	return []string{Describe(target) + " picked"}
}

// Drop puts the first carried thing of kind on the floor of the current room.
func (w *World) Drop(kind string) []string {
	if w.status.Terminal() {
		return []string{gameOver}
	}
	if kind == "" {
		return []string{"drop what?"}
	}
	if !slices.Contains(w.Kinds(), kind) {
		return []string{"Item doesn't exist"}
	}

	target := w.player.FindByKind(kind)
	if target == nil {
		return []string{fmt.Sprintf("You don't have any %s.", kind)}
	}
	if err := w.player.Remove(target); err != nil {
		return []string{err.Error()}
	}
	Base(target).Location = w.Current()
	switch t := target.(type) {
	case *Item:
		w.items = append(w.items, t)
	case *Weapon:
		w.weapons = append(w.weapons, t)
	}
	return []string{Describe(target) + " was dropped."}
}

// Give trades one carried item of kind to the NPC for the key. The NPC leaves the
// world afterwards.
func (w *World) Give(npcName, kind string) []string {
	if w.status.Terminal() {
		return []string{gameOver}
	}
	if npcName == "" {
		return []string{"Give to whom?"}
	}
	if kind == "" {
		return []string{"Give what?"}
	}
	if !w.npcHere() {
		return []string{"There is no one to trade with in this room."}
	}
	if len(w.MonstersIn(w.Current())) > 0 {
		return []string{fmt.Sprintf("Defeat the monsters in this room to trade with %s.", w.npc.Name)}
	}
	if npcName != w.npc.Kind() {
		return []string{fmt.Sprintf("%s is not in the room.", npcName)}
	}
	if !slices.Contains(w.npc.Accepts, kind) {
		return []string{fmt.Sprintf("Invalid item. %s only takes %s.", w.npc.Name, orList(w.npc.Accepts))}
	}

	item := w.player.FindItem(kind)
	if item == nil {
		return []string{fmt.Sprintf("You don't have %s to give to %s.", kind, w.npc.Name)}
	}
	if err := w.player.Remove(item); err != nil {
		return []string{err.Error()}
	}

	name := w.npc.Name
	w.hasKey = true
	w.npc = nil
	w.log.WithFields(logrus.Fields{"item": item.Name, "npc": name}).Info("Key obtained.")
	return []string{
		fmt.Sprintf("Giving %s to %s", kind, name),
		"Cool! Now you have the key of the exit.",
		name + " goes away....",
	}
}

// Fight battles every monster in the current room. Losing bare-handed ends the game.
func (w *World) Fight() []string {
	if w.status.Terminal() {
		return []string{gameOver}
	}
	here := w.MonstersIn(w.Current())
	if len(here) == 0 {
		return []string{"There is no monster in the room!"}
	}

	report := Fight(w.player, here, w.log)
	w.monsters = slices.DeleteFunc(w.monsters, func(m *Monster) bool {
		return slices.Contains(report.Defeated, m)
	})

	var lines []string
	blows := report.Blows
	for _, m := range report.Fought {
		lines = append(lines, "", fmt.Sprintf("Let's fight with the %s", m.Name), "Bam Bam Bam!")
		for len(blows) > 0 && blows[0].Foe == m {
			lines = append(lines, narrateBlow(blows[0]))
			blows = blows[1:]
		}
		if slices.Contains(report.Defeated, m) {
			lines = append(lines, fmt.Sprintf("You just defeated %s. Yay!", m.Name))
		}
	}

	if report.PlayerDefeated {
		w.status = Lost
		w.log.WithField("location", w.Current().ID).Info("Player died.")
		lines = append(lines, "Player Died! You lose.")
	}
	return lines
}

func narrateBlow(b Blow) string {
	switch {
	case b.Attacker == "" && b.Outcome == OutcomePlayerDefeated:
		return fmt.Sprintf("You fight %s with your bare hands and fall. %s has %d HP left.", b.Monster, b.Monster, b.MonsterHP)
	case b.Attacker == "":
		return fmt.Sprintf("You strike %s down with your bare hands. Your health: %d.", b.Monster, b.AttackerHP)
	case b.Outcome == OutcomeWeaponLost:
		return fmt.Sprintf("%s broke against %s. %s has %d HP left.", b.Attacker, b.Monster, b.Monster, b.MonsterHP)
	case b.Broken:
		return fmt.Sprintf("%s slays %s but breaks.", b.Attacker, b.Monster)
	default:
		return fmt.Sprintf("%s slays %s. %s HP left: %d.", b.Attacker, b.Monster, b.Attacker, b.AttackerHP)
	}
}

// Quit ends the session.
func (w *World) Quit() []string {
	if w.status.Terminal() {
		return []string{gameOver}
	}
	w.status = Quit
	return []string{"Thank you for playing.  Good bye."}
}

// WeaponStatus is a weapon and its remaining durability.
type WeaponStatus struct {
	Name string
	HP   int
}

// StatusReport is a read-only snapshot of the player.
type StatusReport struct {
	Location  string
	Remaining int
	HP        int
	Inventory []string
	Weapons   []WeaponStatus
	HasKey    bool
}

// Snapshot reports the player's state without changing anything.
func (w *World) Snapshot() StatusReport {
	r := StatusReport{
		Location:  w.Current().Description,
		Remaining: w.player.Remaining(),
		HP:        w.player.HP,
		HasKey:    w.hasKey,
	}
	for _, it := range w.player.items {
		r.Inventory = append(r.Inventory, Describe(it))
	}
	for _, wp := range w.player.weapons {
		r.Weapons = append(r.Weapons, WeaponStatus{Name: Describe(wp), HP: wp.HP})
	}
	return r
}

// StatusLines renders Snapshot for display.
func (w *World) StatusLines() []string {
	r := w.Snapshot()
	lines := []string{
		fmt.Sprintf("You can pick items upto weight %d pounds", r.Remaining),
		fmt.Sprintf("- Health: %d", r.HP),
		"- Inventory:",
	}
	lines = append(lines, r.Inventory...)
	lines = append(lines, "- Weapons:")
	for _, ws := range r.Weapons {
		lines = append(lines, fmt.Sprintf("%s HP: %d", ws.Name, ws.HP))
	}
	if r.HasKey {
		lines = append(lines, "- The Key")
	}
	return lines
}

func orList(words []string) string {
	switch len(words) {
	case 0:
		return "nothing"
	case 1:
		return words[0]
	}
	out := words[0]
	for _, w := range words[1 : len(words)-1] {
		out += ", " + w
	}
	return out + " or " + words[len(words)-1]
}
