package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tatianab/dungeon-escape/internal/config"
	"github.com/tatianab/dungeon-escape/internal/engine"
	"github.com/tatianab/dungeon-escape/internal/logger"
	"github.com/tatianab/dungeon-escape/internal/models"
	"github.com/tatianab/dungeon-escape/internal/tui"
	"github.com/tatianab/dungeon-escape/internal/world"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI: logs only go to LOG_FILE.
	out, closeLog, err := logger.Output(cfg.LogFile, io.Discard)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Init(cfg.LogLevel, cfg.LogFormat, out)

	dungeon, err := models.LoadDungeon(cfg.DungeonFile)
	if err != nil {
		fmt.Printf("Error loading dungeon: %v\n", err)
		if names, _ := models.ListDungeons(cfg.DungeonDir); len(names) > 0 {
			fmt.Printf("Available dungeons in %s: %s\n", cfg.DungeonDir, strings.Join(names, ", "))
		}
		os.Exit(1)
	}

	seed := cfg.Seed
	newEngine := func() (*engine.Engine, error) {
		eng, err := engine.NewEngine(dungeon, world.NewRandSource(seed))
		seed++
		return eng, err
	}

	if err := tui.Run(newEngine); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
