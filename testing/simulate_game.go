package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tatianab/dungeon-escape/internal/autoplay"
	"github.com/tatianab/dungeon-escape/internal/command"
	"github.com/tatianab/dungeon-escape/internal/config"
	"github.com/tatianab/dungeon-escape/internal/engine"
	"github.com/tatianab/dungeon-escape/internal/logger"
	"github.com/tatianab/dungeon-escape/internal/models"
	"github.com/tatianab/dungeon-escape/internal/world"
)

const maxTurns = 60

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatalf("GEMINI_API_KEY environment variable is not set")
	}
	closeLog, err := initLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	dungeon, err := models.LoadDungeon(cfg.DungeonFile)
	if err != nil {
		log.Fatalf("Failed to load dungeon: %v", err)
	}

	eng, err := engine.NewEngine(dungeon, world.NewRandSource(cfg.Seed))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	player, err := autoplay.NewPlayer(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create player client: %v", err)
	}
	defer player.Close()

	fmt.Printf("--- Dungeon: %s (seed %d) ---\n", dungeon.Title, cfg.Seed)
	fmt.Println(strings.Join(eng.Intro(), "\n"))
	fmt.Println()

	commands := []string{
		"go <direction>", "back", "pick <kind>", "drop <kind>",
		"give " + models.KindOf(dungeon.NPC.Name) + " <kind>", "fight", "status", "quit",
	}

	for turn := 1; turn <= maxTurns; turn++ {
		fmt.Printf("--- Turn %d ---\n", turn)

		choice, err := player.NextCommand(ctx, autoplay.Situation{
			NPC:      dungeon.NPC.Name,
			Accepts:  dungeon.NPC.Accepts,
			Commands: commands,
			Kinds:    eng.World().Kinds(),
			Status:   append(eng.World().Look(), eng.World().StatusLines()...),
			History:  eng.History().Recent(8),
		})
		if err != nil {
			fmt.Printf("Error choosing command: %v\n", err)
			break
		}
		fmt.Printf("Player Action: %s (%s)\n", choice.Command, choice.Reason)

		result := eng.ProcessTurn(command.Parse(choice.Command))
		fmt.Println(strings.Join(result.Lines, "\n"))
		fmt.Printf("Status: %s\n\n", result.Status)

		switch result.Status {
		case world.Won:
			fmt.Println("Game Ended: Player Won!")
			return
		case world.Lost:
			fmt.Println("Game Ended: Player Lost!")
			return
		case world.Quit:
			fmt.Println("Game Ended: Player Quit.")
			return
		}
	}
	fmt.Printf("Game Ended: no result after %d turns.\n", maxTurns)
}

// initLogging sends logs to LOG_FILE when set, to stderr otherwise.
func initLogging(cfg *config.Config) (func() error, error) {
	out, closeLog, err := logger.Output(cfg.LogFile, os.Stderr)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, out)
	return closeLog, nil
}
