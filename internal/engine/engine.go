package engine

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tatianab/dungeon-escape/internal/command"
	"github.com/tatianab/dungeon-escape/internal/logger"
	"github.com/tatianab/dungeon-escape/internal/models"
	"github.com/tatianab/dungeon-escape/internal/world"
)

// Engine runs one session: it dispatches commands onto the world, refuses
// everything once the session has ended, and keeps the turn history.
type Engine struct {
	world       *world.World
	dungeon     *models.Dungeon
	history     models.GameHistory
	turn        int
	wanderEvery int
	sessionID   string
	log         *logrus.Entry
}

// Turn is the result of processing one command.
type Turn struct {
	Lines  []string
	Status world.Status
}

func NewEngine(d *models.Dungeon, rng world.Chooser) (*Engine, error) {
	id := uuid.NewString()
	log := logger.Log.WithFields(logrus.Fields{"session_id": id, "dungeon": d.Title})

	w, err := world.New(d, rng, log)
	if err != nil {
		return nil, err
	}
	log.Info("Session started.")
	return &Engine{
		world:       w,
		dungeon:     d,
		wanderEvery: d.WanderEvery,
		sessionID:   id,
		log:         log,
	}, nil
}

func (e *Engine) World() *world.World { return e.world }
func (e *Engine) Dungeon() *models.Dungeon { return e.dungeon }
func (e *Engine) SessionID() string { return e.sessionID }
func (e *Engine) Status() world.Status { return e.world.Status() }
func (e *Engine) History() models.GameHistory { return e.history }

// Intro returns the welcome banner and the first room.
func (e *Engine) Intro() []string {
	return e.world.Welcome()
}

// ProcessTurn resolves one command completely before returning.
func (e *Engine) ProcessTurn(cmd command.Command) Turn {
	lines := e.dispatch(cmd)
	status := e.world.Status()
	e.turn++

	if !status.Terminal() && !cmd.Unknown() && e.wanderEvery > 0 && e.turn%e.wanderEvery == 0 {
		if moved := e.world.Wander(); moved > 0 {
			e.log.WithField("moved", moved).Debug("Creatures wandered.")
		}
	}

	e.history.Entries = append(e.history.Entries, models.HistoryEntry{
		PlayerAction: cmd.String(),
		Outcome:      strings.Join(lines, "\n"),
		Status:       status.String(),
		Location:     e.world.Current().Description,
		Inventory:    e.carried(),
	})

	entry := e.log.WithFields(logrus.Fields{
		"turn":   e.turn,
		"verb":   string(cmd.Verb),
		"args":   strings.TrimSpace(cmd.Second + " " + cmd.Third),
		"status": status.String(),
	})
	if status.Terminal() {
		entry.Info("Session ended.")
	} else {
		entry.Debug("Turn processed.")
	}
	return Turn{Lines: lines, Status: status}
}

func (e *Engine) dispatch(cmd command.Command) []string {
	if cmd.Unknown() {
		return []string{"I don't know what you mean..."}
	}
	if e.world.Status().Terminal() {
		return []string{"The game is over."}
	}

	switch cmd.Verb {
	case command.Help:
		lines := e.world.Help()
		lines = append(lines, "", "Your command words are:", strings.Join(command.Words(), " "))
		return lines
	case command.Go:
		if !cmd.HasSecond() {
			return []string{"Go where?"}
		}
		return e.world.Move(cmd.Second)
	case command.Back:
		return e.world.Back()
	case command.Pick:
		return e.world.PickUp(cmd.Second)
	case command.Drop:
		return e.world.Drop(cmd.Second)
	case command.Give:
		return e.world.Give(cmd.Second, cmd.Third)
	case command.Fight:
		return e.world.Fight()
	case command.Status:
		return e.world.StatusLines()
	case command.Quit:
		return e.world.Quit()
	}
	return []string{"I don't know what you mean..."}
}

func (e *Engine) carried() []string {
	var out []string
	for _, it := range e.world.Player().Items() {
		out = append(out, it.Name)
	}
	for _, w := range e.world.Player().Weapons() {
		out = append(out, w.Name)
	}
	return out
}
