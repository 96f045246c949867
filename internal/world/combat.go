package world

import (
	"github.com/sirupsen/logrus"
)

// Outcome is the result of a single exchange between an attacker and a monster.
type Outcome int

const (
	OutcomeMonsterDefeated Outcome = iota
	OutcomeWeaponLost
	OutcomePlayerDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMonsterDefeated:
		return "monster_defeated"
	case OutcomeWeaponLost:
		return "weapon_lost"
	case OutcomePlayerDefeated:
		return "player_defeated"
	default:
		return "unknown"
	}
}

// Resolve compares two hit-point pools. A monster stronger than the attacker loses
// the attacker's hit points and the attacker is spent (clamped to zero). Otherwise
// the attacker pays the monster's hit points and the monster dies.
func Resolve(attackerHP, monsterHP int) (attackerAfter, monsterAfter int, attackerWins bool) {
	if monsterHP > attackerHP {
		return 0, monsterHP - attackerHP, false
	}
	return attackerHP - monsterHP, monsterHP, true
}

// Blow records one exchange for narration.
type Blow struct {
	Attacker   string // weapon name, or "" when bare-handed
	Monster    string
	Foe        *Monster
	Outcome    Outcome
	AttackerHP int // after the exchange
	MonsterHP  int // after the exchange
	Broken     bool
}

// FightReport is the outcome of fighting every monster of a room.
type FightReport struct {
	Fought         []*Monster
	Defeated       []*Monster
	Blows          []Blow
	PlayerDefeated bool
}

// Fight resolves the monsters in order. For each one the arsenal is tried front to
// back until the monster dies; spent weapons leave the arsenal. With no weapon left
// and the monster alive the player fights bare-handed, and losing that stops the
// whole fight. The caller removes the defeated monsters from the world.
func Fight(p *Player, monsters []*Monster, log logrus.FieldLogger) FightReport {
	var r FightReport
	for _, m := range monsters {
		r.Fought = append(r.Fought, m)
		blows, outcome := fightMonster(p, m, log)
		r.Blows = append(r.Blows, blows...)
		if outcome == OutcomePlayerDefeated {
			r.PlayerDefeated = true
			return r
		}
		r.Defeated = append(r.Defeated, m)
	}
	return r
}

func fightMonster(p *Player, m *Monster, log logrus.FieldLogger) ([]Blow, Outcome) {
	var blows []Blow
	for len(p.weapons) > 0 {
		w := p.weapons[0]
		before := w.HP
		var won bool
		w.HP, m.HP, won = Resolve(w.HP, m.HP)
		b := Blow{Attacker: w.Name, Monster: m.Name, Foe: m, AttackerHP: w.HP, MonsterHP: m.HP, Outcome: OutcomeWeaponLost}
		if won {
			b.Outcome = OutcomeMonsterDefeated
		}
		if w.HP <= 0 {
			b.Broken = true
			// Spent weapons are discarded: their weight goes back to the budget.
			_ = p.Remove(w)
		}
		logExchange(log, b, before)
		blows = append(blows, b)
		if won {
			return blows, OutcomeMonsterDefeated
		}
	}

	before := p.HP
	var won bool
	p.HP, m.HP, won = Resolve(p.HP, m.HP)
	b := Blow{Monster: m.Name, Foe: m, AttackerHP: p.HP, MonsterHP: m.HP, Outcome: OutcomeMonsterDefeated}
	if !won {
		b.Outcome = OutcomePlayerDefeated
	}
	logExchange(log, b, before)
	return append(blows, b), b.Outcome
}

func logExchange(log logrus.FieldLogger, b Blow, attackerBefore int) {
	attacker := b.Attacker
	if attacker == "" {
		attacker = "player"
	}
	log.WithFields(logrus.Fields{
		"component":   "combat",
		"attacker":    attacker,
		"monster":     b.Monster,
		"hp_before":   attackerBefore,
		"hp_after":    b.AttackerHP,
		"monster_hp":  b.MonsterHP,
		"outcome":     b.Outcome.String(),
		"weapon_lost": b.Broken,
	}).Debug("Exchange resolved.")
}
